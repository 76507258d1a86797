package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Any status may move to any
// other; there are no transition-adjacency rules.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus converts a raw string into an OrderStatus, rejecting
// anything outside the four recognised values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// OrderLine is one priced product entry within an order. Name and unit price
// are snapshotted at composition time and never re-read from the live product,
// so the line stays displayable even after the product changes or is deleted.
type OrderLine struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Subtotal    float64   `json:"subtotal"`
}

// Order represents a composed, priced customer order. Total always equals the
// sum of line subtotals at creation time and is never recomputed afterwards.
// Only Status is mutable. CustomerID may dangle after a customer is deleted;
// CustomerName keeps the order displayable regardless.
type Order struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	CustomerID   uuid.UUID   `json:"customerId" db:"customer_id"`
	CustomerName string      `json:"customerName" db:"customer_name"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	DeliveryDate time.Time   `json:"deliveryDate" db:"delivery_date"`
	Status       OrderStatus `json:"status" db:"status"`
	Lines        []OrderLine `json:"lines" db:"lines"`
	Total        float64     `json:"total" db:"total"`
}

// OrderRequest represents the request payload for composing an order.
// DeliveryDate is expected in YYYY-MM-DD form.
type OrderRequest struct {
	CustomerID   uuid.UUID          `json:"customerId"`
	DeliveryDate string             `json:"deliveryDate"`
	Lines        []OrderLineRequest `json:"lines"`
}

// OrderLineRequest represents a single proposed line in an order request.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// StatusUpdateRequest represents the payload for overwriting an order's status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// DeliveryDateFormat is the only accepted layout for requested delivery dates.
const DeliveryDateFormat = "2006-01-02"
