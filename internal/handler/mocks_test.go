package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

type MockCustomerUseCase struct {
	mock.Mock
}

func (m *MockCustomerUseCase) Create(ctx context.Context, in usecase.CreateCustomerInput) (*entity.Customer, error) {
	args := m.Called(ctx, in)
	if c, ok := args.Get(0).(*entity.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerUseCase) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Page[entity.Customer]), args.Error(1)
}

func (m *MockCustomerUseCase) Update(ctx context.Context, id string, in usecase.UpdateCustomerInput) (*entity.Customer, error) {
	args := m.Called(ctx, id, in)
	if c, ok := args.Get(0).(*entity.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) Create(ctx context.Context, customerID string, items []usecase.OrderItemInput) (*entity.Order, error) {
	args := m.Called(ctx, customerID, items)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) Get(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	args := m.Called(ctx, status, req)
	return args.Get(0).(entity.Page[entity.Order]), args.Error(1)
}

func (m *MockOrderUseCase) ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	args := m.Called(ctx, customerID, req)
	return args.Get(0).(entity.Page[entity.Order]), args.Error(1)
}

func (m *MockOrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	args := m.Called(ctx, id, status)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) Cancel(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWebhookProcessor struct {
	mock.Mock
}

func (m *MockWebhookProcessor) ProcessWebhook(ctx context.Context, payload usecase.WebhookPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) CreateCheckout(ctx context.Context, orderID string) (*usecase.CheckoutResult, error) {
	args := m.Called(ctx, orderID)
	if r, ok := args.Get(0).(*usecase.CheckoutResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentUseCase) Get(ctx context.Context, id string) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentUseCase) List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	args := m.Called(ctx, status, req)
	return args.Get(0).(entity.Page[entity.Payment]), args.Error(1)
}

func (m *MockPaymentUseCase) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	args := m.Called(ctx, orderID)
	if p, ok := args.Get(0).([]entity.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
