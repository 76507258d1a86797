package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a registered bakery customer.
type Customer struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        *string   `json:"email,omitempty" db:"email"`
	Address      *string   `json:"address,omitempty" db:"address"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}

// CustomerRequest represents the request payload for creating or replacing a
// customer. RegisteredAt is server-assigned and never part of the payload.
type CustomerRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}
