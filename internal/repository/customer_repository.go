package repository

import (
	"context"
	"fmt"

	"bakery-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.RegisteredAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customer.ID.String()).
			Msg("failed to insert customer")
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	r.logger.Debug().
		Str("customer_id", customer.ID.String()).
		Msg("customer created successfully")

	return nil
}

// GetAll retrieves all customers, capped at limit.
func (r *customerRepository) GetAll(ctx context.Context, limit int) ([]model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, registered_at
		FROM customers
		ORDER BY registered_at
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer by its ID.
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, registered_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// Update replaces every field except the identifier and registration
// timestamp.
func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) (bool, error) {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customer.ID.String()).
			Msg("failed to update customer")
		return false, fmt.Errorf("failed to update customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a customer by ID.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM customers WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to delete customer")
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of customers.
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count customers")
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}
