package service

import (
	"context"

	"bakery-api/internal/model"

	"github.com/google/uuid"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Create registers a new customer with a server-assigned identifier and
	// registration timestamp.
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// Update replaces every customer field except the identifier and
	// registration timestamp.
	Update(ctx context.Context, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error)

	// Delete removes a customer. Orders referencing it keep their snapshot
	// fields; no cascade check is performed.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// Create adds a new product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update replaces every product field except the identifier.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product. Orders referencing it keep their snapshot
	// fields; no cascade check is performed.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderService defines operations for order composition and management.
type OrderService interface {
	// Create composes a proposed order into a fully priced, persisted order.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus overwrites an order's status with one of the four
	// recognised values.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsService defines the read-only aggregation over the three collections.
type StatsService interface {
	// GetStats computes a point-in-time snapshot of business metrics.
	GetStats(ctx context.Context) (*model.Stats, error)
}
