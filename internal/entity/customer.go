package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered buyer. Email is unique across the store.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewCustomer builds a customer with a fresh ID and timestamps.
func NewCustomer(name, email, phone string) *Customer {
	now := time.Now().UTC()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
