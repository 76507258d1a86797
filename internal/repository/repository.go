package repository

import (
	"context"

	"bakery-api/internal/model"

	"github.com/google/uuid"
)

// DefaultListLimit caps unpaginated list operations.
const DefaultListLimit = 1000

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer.
	Create(ctx context.Context, customer *model.Customer) error

	// GetAll retrieves all customers, capped at limit.
	GetAll(ctx context.Context, limit int) ([]model.Customer, error)

	// GetByID retrieves a single customer by its ID. Returns (nil, nil) when
	// no customer matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// Update replaces every field except the identifier and registration
	// timestamp. Returns false when no customer matched.
	Update(ctx context.Context, customer *model.Customer) (bool, error)

	// Delete removes a customer by ID. Returns false when no customer matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the number of customers.
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves all products, capped at limit.
	GetAll(ctx context.Context, limit int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// no product matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update replaces every field except the identifier. Returns false when
	// no product matched.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete removes a product by ID. Returns false when no product matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a fully composed order as a single row write.
	Create(ctx context.Context, order *model.Order) error

	// GetAll retrieves all orders newest-first, capped at limit.
	GetAll(ctx context.Context, limit int) ([]model.Order, error)

	// GetByID retrieves a single order by its ID. Returns (nil, nil) when no
	// order matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus overwrites the status field only, leaving the rest of the
	// row untouched. Returns false when no order matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (bool, error)

	// Delete removes an order by ID. Returns false when no order matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the number of orders.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of orders in the given status.
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)

	// SumTotalByStatus returns the sum of order totals over orders in the
	// given status.
	SumTotalByStatus(ctx context.Context, status model.OrderStatus) (float64, error)
}
