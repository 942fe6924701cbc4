package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"payment-automation/internal/entity"
	"payment-automation/internal/repository"
)

var validate = validator.New()

// CreateCustomerInput is the signup payload.
type CreateCustomerInput struct {
	Name  string `validate:"required,min=2,max=150"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,numeric"`
}

// UpdateCustomerInput carries the editable customer fields.
type UpdateCustomerInput struct {
	Name  string `validate:"required,min=2,max=150"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,numeric"`
}

// CustomerUseCase implements customer signup and management.
type CustomerUseCase struct {
	repo          repository.CustomerRepository
	notifications *NotificationUseCase // nil-safe: welcome emails skipped if nil
}

// NewCustomerUseCase wires the customer use case. notifications may be nil.
func NewCustomerUseCase(repo repository.CustomerRepository, notifications *NotificationUseCase) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, notifications: notifications}
}

// Create validates the input, persists the customer and dispatches a welcome
// email best-effort. Validation failures happen before any persistence call.
func (uc *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(in.Name, in.Email, in.Phone); err != nil {
		return nil, err
	}

	customer := entity.NewCustomer(in.Name, in.Email, in.Phone)
	if err := uc.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("email %s is already registered", in.Email)
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	if uc.notifications != nil {
		if err := uc.notifications.SendWelcome(ctx, WelcomeInput{
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
		}); err != nil {
			slog.WarnContext(ctx, "welcome email not sent", "customer_id", customer.ID, "error", err)
		}
	}

	return customer, nil
}

// Get returns a customer or a not-found error.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("customer %s not found", id)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// List returns one page of customers.
func (uc *CustomerUseCase) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error) {
	return uc.repo.List(ctx, req)
}

// Update validates and overwrites the editable fields.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (*entity.Customer, error) {
	if err := validateCustomerInput(in.Name, in.Email, in.Phone); err != nil {
		return nil, err
	}

	customer, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	if err := uc.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("email %s is already registered", in.Email)
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete removes a customer; dependent orders and payments cascade in the
// database.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("customer %s not found", id)
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func validateCustomerInput(name, email, phone string) error {
	in := CreateCustomerInput{Name: name, Email: email, Phone: phone}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		switch violations[0].Field() {
		case "Name":
			return Validation("name is required and must be 2-150 characters")
		case "Email":
			return Validation("email must be a valid email address")
		case "Phone":
			return Validation("phone is required and must contain digits only")
		}
	}
	return Validation("invalid customer payload")
}
