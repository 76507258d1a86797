package service

import (
	"context"
	"fmt"

	"bakery-api/internal/model"
	"bakery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create adds a new product to the catalogue. Availability defaults to true
// when the request leaves it unset.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   available,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Float64("price", product.Price).
		Msg("product created")

	return product, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx, repository.DefaultListLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.NewProductNotFoundError(id.String())
	}

	return product, nil
}

// Update replaces every product field except the identifier.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &model.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   available,
	}

	found, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if !found {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found for update")
		return nil, model.NewProductNotFoundError(id.String())
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	return product, nil
}

// Delete removes a product. Order lines referencing it keep their snapshotted
// name and price; the dangling identifier is accepted behaviour.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !found {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found for delete")
		return model.NewProductNotFoundError(id.String())
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// validateProductRequest checks the required product fields and the
// non-negative price constraint.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewMissingFieldError("body")
	}
	if req.Name == "" {
		return model.NewMissingFieldError("name")
	}
	if req.Category == "" {
		return model.NewMissingFieldError("category")
	}
	if req.Price < 0 {
		return model.ErrInvalidPrice
	}
	return nil
}
