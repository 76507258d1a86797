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

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
	now          func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "order").Logger(),
		now:          time.Now,
	}
}

// Create composes a proposed order into a fully priced, persisted order.
//
// Validation runs entirely before the single store write: request shape,
// customer existence, delivery date format, then each line's product in input
// order. The first missing product short-circuits the whole operation, so a
// failed composition never persists anything. Each line snapshots the product
// name and price as read; the order total is accumulated in line order.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", req.CustomerID.String()).Msg("failed to look up customer")
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		s.logger.Warn().Str("customer_id", req.CustomerID.String()).Msg("customer not found for order")
		return nil, model.ErrCustomerNotFound
	}

	deliveryDate, err := time.Parse(model.DeliveryDateFormat, req.DeliveryDate)
	if err != nil {
		s.logger.Warn().
			Str("delivery_date", req.DeliveryDate).
			Msg("invalid delivery date format")
		return nil, model.ErrInvalidDateFormat
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	var total float64

	for _, line := range req.Lines {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Str("product_id", line.ProductID.String()).Msg("failed to look up product")
			return nil, fmt.Errorf("failed to look up product: %w", err)
		}
		if product == nil {
			s.logger.Warn().Str("product_id", line.ProductID.String()).Msg("product not found for order")
			return nil, model.NewProductNotFoundError(line.ProductID.String())
		}

		subtotal := product.Price * float64(line.Quantity)
		lines = append(lines, model.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total += subtotal
	}

	order := &model.Order{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		CreatedAt:    s.now().UTC(),
		DeliveryDate: deliveryDate,
		Status:       model.StatusPending,
		Lines:        lines,
		Total:        total,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", customer.ID.String()).
		Int("line_count", len(lines)).
		Float64("total", total).
		Msg("order created")

	return order, nil
}

// GetAll retrieves all orders, newest first.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx, repository.DefaultListLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// GetByID retrieves a single order by ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order by ID")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus overwrites an order's status. The raw status string is checked
// against the four recognised values before the store is touched, so an
// invalid value leaves the stored status unchanged.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", status).
			Msg("invalid order status")
		return err
	}

	found, err := s.orderRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if !found {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
		return model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(parsed)).
		Msg("order status updated")

	return nil
}

// Delete removes an order.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if !found {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found for delete")
		return model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	return nil
}

// validateOrderRequest checks the proposed order shape before any store
// access: a non-empty line list, product ids present, quantities positive.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewMissingFieldError("body")
	}

	if req.CustomerID == uuid.Nil {
		return model.NewMissingFieldError("customerId")
	}

	if req.DeliveryDate == "" {
		return model.NewMissingFieldError("deliveryDate")
	}

	if len(req.Lines) == 0 {
		return model.NewMissingFieldError("lines")
	}

	for i, line := range req.Lines {
		if line.ProductID == uuid.Nil {
			return model.NewMissingFieldError(fmt.Sprintf("lines[%d].productId", i))
		}
		if line.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
