package model

import "github.com/google/uuid"

// Product represents a bakery product in the catalogue.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	Available   bool      `json:"available" db:"available"`
}

// ProductRequest represents the request payload for creating or replacing a
// product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}
