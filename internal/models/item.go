package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingItem represents a single entry on the shopping list. Name is stored
// in the language the item was entered in; Category and Unit are always
// derived from the canonical English term.
type ShoppingItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	IsCompleted bool      `json:"is_completed"`
	Notes       *string   `json:"notes,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	AddedAt     time.Time `json:"added_at"`
}

// NewShoppingItem builds an item with a fresh unique id and the current
// timestamp. Quantity is clamped to at least 1.
func NewShoppingItem(name string, quantity int, unit, category string) ShoppingItem {
	if quantity < 1 {
		quantity = 1
	}
	return ShoppingItem{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Category: category,
		AddedAt:  time.Now(),
	}
}

// CreateItemRequest is the request body for adding an item directly
type CreateItemRequest struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Unit     string   `json:"unit,omitempty"`
	Category string   `json:"category,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Brand    *string  `json:"brand,omitempty"`
}

// UpdateItemRequest is the request body for partially updating an item
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Category    *string  `json:"category,omitempty"`
	IsCompleted *bool    `json:"is_completed,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
}
