package service

import (
	"context"
	"fmt"

	"bakery-api/internal/model"
	"bakery-api/internal/repository"

	"github.com/rs/zerolog"
)

// statsService implements StatsService by scanning the three collections on
// every call. Nothing is cached; revenue is recomputed fresh each time.
type statsService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	logger       zerolog.Logger
}

// NewStatsService creates a new statistics service.
func NewStatsService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) StatsService {
	return &statsService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		logger:       logger.With().Str("service", "stats").Logger(),
	}
}

// GetStats computes a point-in-time snapshot of business metrics. Revenue
// sums totals over completed orders only; cancelled orders are derivable from
// the counts and never reported separately.
func (s *statsService) GetStats(ctx context.Context) (*model.Stats, error) {
	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	pending, err := s.orderRepo.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	inProgress, err := s.orderRepo.CountByStatus(ctx, model.StatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress orders: %w", err)
	}

	completed, err := s.orderRepo.CountByStatus(ctx, model.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	revenue, err := s.orderRepo.SumTotalByStatus(ctx, model.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}

	stats := &model.Stats{
		TotalCustomers:   totalCustomers,
		TotalProducts:    totalProducts,
		TotalOrders:      totalOrders,
		PendingOrders:    pending,
		InProgressOrders: inProgress,
		CompletedOrders:  completed,
		TotalRevenue:     revenue,
	}

	s.logger.Debug().
		Int64("total_orders", totalOrders).
		Float64("total_revenue", revenue).
		Msg("computed stats snapshot")

	return stats, nil
}
