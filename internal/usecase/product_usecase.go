package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"payment-automation/internal/entity"
	"payment-automation/internal/repository"
)

// CreateProductInput is the product registration payload.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

// UpdateProductInput carries the editable product fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Active      bool
}

// ProductUseCase implements catalog management.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase wires the product use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create validates and persists a product.
func (uc *ProductUseCase) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(in.Name, in.Description, in.Price); err != nil {
		return nil, err
	}

	product := entity.NewProduct(in.Name, in.Description, in.Price, in.ImageURL)
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Get returns a product or a not-found error.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("product %s not found", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// List returns one page of products; a non-empty search narrows by name
// substring, case-insensitively.
func (uc *ProductUseCase) List(ctx context.Context, search string, req entity.PageRequest) (entity.Page[entity.Product], error) {
	if search != "" {
		return uc.repo.SearchByName(ctx, search, req)
	}
	return uc.repo.List(ctx, req)
}

// Update validates and overwrites the editable fields.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in UpdateProductInput) (*entity.Product, error) {
	if err := validateProductInput(in.Name, in.Description, in.Price); err != nil {
		return nil, err
	}

	product, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.Active = in.Active
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("product %s not found", id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func validateProductInput(name, description string, price decimal.Decimal) error {
	if name == "" {
		return Validation("name is required")
	}
	if description == "" {
		return Validation("description is required")
	}
	if !price.IsPositive() {
		return Validation("price must be a positive amount")
	}
	return nil
}
