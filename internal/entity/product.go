package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Price is a fixed-point decimal; order items
// snapshot it at purchase time, so later edits never rewrite history.
type Product struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	ImageURL    string          `json:"image_url,omitempty" db:"image_url"`
	Active      bool            `json:"active" db:"active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// NewProduct builds an active product with a fresh ID and timestamps.
func NewProduct(name, description string, price decimal.Decimal, imageURL string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
