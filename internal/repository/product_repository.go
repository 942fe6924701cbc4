package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payment-automation/internal/entity"
)

type productRepo struct {
	db *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed product repository.
func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepo{db: db}
}

var productSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"price":      true,
}

const productColumns = "id, name, description, price, image_url, active, created_at, updated_at"

func (r *productRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, price, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

func (r *productRepo) Update(ctx context.Context, p *entity.Product) error {
	p.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, image_url = $4, active = $5, updated_at = $6
		WHERE id = $7
	`, p.Name, p.Description, p.Price, p.ImageURL, p.Active, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Product], error) {
	return r.list(ctx, req, "", nil)
}

// SearchByName matches the name substring case-insensitively.
func (r *productRepo) SearchByName(ctx context.Context, name string, req entity.PageRequest) (entity.Page[entity.Product], error) {
	return r.list(ctx, req, "WHERE name ILIKE $3", "%"+name+"%")
}

func (r *productRepo) list(ctx context.Context, req entity.PageRequest, where string, filter any) (entity.Page[entity.Product], error) {
	req = req.Normalize()

	countSQL := "SELECT COUNT(*) FROM products"
	countArgs := []any{}
	if where != "" {
		countSQL += " WHERE name ILIKE $1"
		countArgs = append(countArgs, filter)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return entity.Page[entity.Product]{}, fmt.Errorf("count products: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM products %s %s LIMIT $1 OFFSET $2`,
		productColumns, where, orderByClause(req, productSortColumns))
	args := []any{req.PageSize, req.Offset()}
	if where != "" {
		args = append(args, filter)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.Page[entity.Product]{}, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return entity.Page[entity.Product]{}, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return entity.Page[entity.Product]{}, fmt.Errorf("iterate products: %w", err)
	}

	return entity.NewPage(products, total, req), nil
}
