package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"bakery-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Order lines live in a JSONB column on the orders row, so composing an order
// is exactly one row write with no transaction to manage.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a fully composed order as a single row write.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to encode order lines")
		return fmt.Errorf("failed to encode order lines: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_id, customer_name, created_at, delivery_date, status, lines, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.CreatedAt,
		order.DeliveryDate,
		string(order.Status),
		lines,
		order.Total,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("line_count", len(order.Lines)).
		Msg("order created successfully")

	return nil
}

// scanOrder decodes one order row, including its JSONB line snapshots.
func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var status string
	var lines []byte

	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.CreatedAt,
		&o.DeliveryDate,
		&status,
		&lines,
		&o.Total,
	)
	if err != nil {
		return nil, err
	}

	o.Status = model.OrderStatus(status)
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode order lines: %w", err)
	}

	return &o, nil
}

// GetAll retrieves all orders newest-first, capped at limit.
func (r *orderRepository) GetAll(ctx context.Context, limit int) ([]model.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, created_at, delivery_date, status, lines, total
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, created_at, delivery_date, status, lines, total
		FROM orders
		WHERE id = $1
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return o, nil
}

// UpdateStatus overwrites the status field only.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes an order by ID.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM orders WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of orders.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// CountByStatus returns the number of orders in the given status.
func (r *orderRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Str("status", string(status)).Msg("failed to count orders by status")
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return count, nil
}

// SumTotalByStatus returns the sum of order totals over orders in the given
// status.
func (r *orderRepository) SumTotalByStatus(ctx context.Context, status model.OrderStatus) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = $1`, string(status)).Scan(&sum)
	if err != nil {
		r.logger.Error().Err(err).Str("status", string(status)).Msg("failed to sum order totals by status")
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}

	return sum, nil
}
