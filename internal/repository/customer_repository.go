package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"payment-automation/internal/entity"
)

type customerRepo struct {
	db *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed customer repository.
func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &customerRepo{db: db}
}

var customerSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
}

func (r *customerRepo) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email already registered", ErrDuplicate)
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.getBy(ctx, "id", id)
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.getBy(ctx, "email", email)
}

func (r *customerRepo) getBy(ctx context.Context, column, value string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers WHERE `+column+` = $1
	`, value).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get customer by %s: %w", column, err)
	}
	return &c, nil
}

func (r *customerRepo) Update(ctx context.Context, c *entity.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, updated_at = $4
		WHERE id = $5
	`, c.Name, c.Email, c.Phone, c.UpdatedAt, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email already registered", ErrDuplicate)
		}
		return fmt.Errorf("update customer %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *customerRepo) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error) {
	req = req.Normalize()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return entity.Page[entity.Customer]{}, fmt.Errorf("count customers: %w", err)
	}

	sql := fmt.Sprintf(`
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers %s LIMIT $1 OFFSET $2
	`, orderByClause(req, customerSortColumns))

	rows, err := r.db.Query(ctx, sql, req.PageSize, req.Offset())
	if err != nil {
		return entity.Page[entity.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return entity.Page[entity.Customer]{}, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return entity.Page[entity.Customer]{}, fmt.Errorf("iterate customers: %w", err)
	}

	return entity.NewPage(customers, total, req), nil
}
