package repository

import (
	"context"

	"payment-automation/internal/entity"
)

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	SearchByName(ctx context.Context, name string, req entity.PageRequest) (entity.Page[entity.Product], error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Product], error)
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// CreateOrder inserts the order and every item as one transaction.
	// Unit prices are resolved from the product rows inside the same
	// transaction unless the item already carries a price override.
	CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error)
	ListByStatus(ctx context.Context, status entity.OrderStatus, req entity.PageRequest) (entity.Page[entity.Order], error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Order], error)
}

// PaymentRepository persists payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error)
	ListByStatus(ctx context.Context, status entity.PaymentStatus, req entity.PageRequest) (entity.Page[entity.Payment], error)
	Update(ctx context.Context, p *entity.Payment) error
	UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error
	MarkNotified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Payment], error)
}
