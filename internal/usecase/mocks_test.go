package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-automation/internal/email"
	"payment-automation/internal/entity"
	"payment-automation/internal/mercadopago"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if c, ok := args.Get(0).(*entity.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Page[entity.Customer]), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, name string, req entity.PageRequest) (entity.Page[entity.Product], error) {
	args := m.Called(ctx, name, req)
	return args.Get(0).(entity.Page[entity.Product]), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Product], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Page[entity.Product]), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (*entity.Order, error) {
	args := m.Called(ctx, customerID, items)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*entity.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	args := m.Called(ctx, customerID, req)
	return args.Get(0).(entity.Page[entity.Order]), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, req entity.PageRequest) (entity.Page[entity.Order], error) {
	args := m.Called(ctx, status, req)
	return args.Get(0).(entity.Page[entity.Order]), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Order], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Page[entity.Order]), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.Payment, error) {
	args := m.Called(ctx, externalID)
	if p, ok := args.Get(0).(*entity.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	args := m.Called(ctx, orderID)
	if p, ok := args.Get(0).([]entity.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepository) ListByStatus(ctx context.Context, status entity.PaymentStatus, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	args := m.Called(ctx, status, req)
	return args.Get(0).(entity.Page[entity.Payment]), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockPaymentRepository) MarkNotified(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.Page[entity.Payment]), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	args := m.Called(ctx, req)
	if p, ok := args.Get(0).(*mercadopago.Preference); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProvider) GetPayment(ctx context.Context, paymentID string) (*mercadopago.PaymentInfo, error) {
	args := m.Called(ctx, paymentID)
	if p, ok := args.Get(0).(*mercadopago.PaymentInfo); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
