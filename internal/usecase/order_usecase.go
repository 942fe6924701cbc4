package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"payment-automation/internal/entity"
	"payment-automation/internal/repository"
)

// OrderItemInput is one requested order line. UnitPrice, when set, overrides
// the current product price.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice *decimal.Decimal
}

// OrderUseCase implements order creation and lifecycle management.
type OrderUseCase struct {
	repo          repository.OrderRepository
	ordersCreated metric.Int64Counter
}

// NewOrderUseCase wires the order use case.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	counter, _ := otel.Meter("payment-automation/orders").Int64Counter(
		"orders.created",
		metric.WithDescription("Number of orders created"),
	)
	return &OrderUseCase{repo: repo, ordersCreated: counter}
}

// Create validates the request and delegates the atomic insert to the
// repository. Either the order and every item exist afterwards, or nothing
// does.
func (uc *OrderUseCase) Create(ctx context.Context, customerID string, items []OrderItemInput) (*entity.Order, error) {
	if customerID == "" {
		return nil, Validation("customerId is required")
	}
	if len(items) == 0 {
		return nil, Validation("items must not be empty")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return nil, Validation("productId is required for every item")
		}
		if item.Quantity <= 0 {
			return nil, Validation("quantity must be positive for every item")
		}
		if item.UnitPrice != nil && !item.UnitPrice.IsPositive() {
			return nil, Validation("unitPrice override must be positive")
		}
	}

	repoItems := make([]entity.OrderItem, len(items))
	for i, item := range items {
		repoItems[i] = entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if item.UnitPrice != nil {
			repoItems[i].UnitPrice = *item.UnitPrice
		}
	}

	order, err := uc.repo.CreateOrder(ctx, customerID, repoItems)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCustomerNotFound):
			return nil, NotFound("customer %s not found", customerID)
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, NotFound("%s", err.Error())
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if uc.ordersCreated != nil {
		uc.ordersCreated.Add(ctx, 1)
	}
	return order, nil
}

// Get returns an order with its items, or a not-found error.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("order %s not found", id)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns one page of orders, optionally filtered by status.
func (uc *OrderUseCase) List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	if status == "" {
		return uc.repo.List(ctx, req)
	}
	parsed, err := entity.ParseOrderStatus(status)
	if err != nil {
		return entity.Page[entity.Order]{}, Validation("%s", err.Error())
	}
	return uc.repo.ListByStatus(ctx, parsed, req)
}

// ListByCustomer returns one page of a customer's orders.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	return uc.repo.ListByCustomer(ctx, customerID, req)
}

// UpdateStatus moves an order along the state machine, rejecting edges the
// transition table does not allow.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	next, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, Validation("%s", err.Error())
	}

	order, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == next {
		return order, nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, DomainRule("order %s cannot move from %s to %s", id, order.Status, next)
	}

	if err := uc.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = next
	return order, nil
}

// Cancel marks an order cancelled. Completed orders stay completed.
func (uc *OrderUseCase) Cancel(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusCompleted {
		return nil, DomainRule("completed orders cannot be cancelled")
	}
	if order.Status == entity.OrderStatusCancelled {
		return order, nil
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
		return nil, DomainRule("order %s cannot be cancelled from status %s", id, order.Status)
	}

	if err := uc.repo.UpdateStatus(ctx, id, entity.OrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	order.Status = entity.OrderStatusCancelled
	return order, nil
}
