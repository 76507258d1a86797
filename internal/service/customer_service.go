package service

import (
	"context"
	"fmt"
	"time"

	"bakery-api/internal/model"
	"bakery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Create registers a new customer.
func (s *customerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		RegisteredAt: time.Now().UTC(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID.String()).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Str("name", customer.Name).
		Msg("customer created")

	return customer, nil
}

// GetAll retrieves all customers.
func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx, repository.DefaultListLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all customers")
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	s.logger.Debug().Int("count", len(customers)).Msg("retrieved customers")

	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to get customer by ID")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// Update replaces every customer field except the identifier and registration
// timestamp. The stored registration timestamp is carried over untouched.
func (s *customerService) Update(ctx context.Context, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	found, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to update customer")
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if !found {
		s.logger.Debug().Str("customer_id", id.String()).Msg("customer not found for update")
		return nil, model.ErrCustomerNotFound
	}

	// Re-read to return the record with its immutable registration timestamp.
	updated, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to reload updated customer")
		return nil, fmt.Errorf("failed to reload customer: %w", err)
	}
	if updated == nil {
		return nil, model.ErrCustomerNotFound
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer updated")

	return updated, nil
}

// Delete removes a customer. Orders that reference the customer keep their
// snapshotted name; the dangling identifier is accepted behaviour.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if !found {
		s.logger.Debug().Str("customer_id", id.String()).Msg("customer not found for delete")
		return model.ErrCustomerNotFound
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer deleted")

	return nil
}

// validateCustomerRequest checks the required customer fields.
func validateCustomerRequest(req *model.CustomerRequest) error {
	if req == nil {
		return model.NewMissingFieldError("body")
	}
	if req.Name == "" {
		return model.NewMissingFieldError("name")
	}
	if req.Phone == "" {
		return model.NewMissingFieldError("phone")
	}
	return nil
}
