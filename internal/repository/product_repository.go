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

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, price, category, description, available)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Category,
		product.Description,
		product.Available,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID.String()).
		Msg("product created successfully")

	return nil
}

// GetAll retrieves all products, capped at limit.
func (r *productRepository) GetAll(ctx context.Context, limit int) ([]model.Product, error) {
	query := `
		SELECT id, name, price, category, description, available
		FROM products
		ORDER BY name
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Available)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		SELECT id, name, price, category, description, available
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Available)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Update replaces every field except the identifier.
func (r *productRepository) Update(ctx context.Context, product *model.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, price = $3, category = $4, description = $5, available = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Category,
		product.Description,
		product.Available,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a product by ID.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
