package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"payment-automation/internal/entity"
)

type orderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed order repository.
func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &orderRepo{db: db}
}

var orderSortColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"status":       true,
	"total_amount": true,
}

// CreateOrder persists the order and all of its items in one transaction.
// Unit prices are snapshots of the product price at this moment; an item that
// already carries a positive UnitPrice keeps it as an override, but its
// product must still exist. Any missing customer or product rolls the whole
// thing back.
func (r *orderRepo) CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (*entity.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", customerID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check customer %s: %w", customerID, err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	resolved, err := resolveOrderItems(ctx, tx, items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Status:      entity.OrderStatusPending,
		TotalAmount: entity.SumItems(resolved),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, order.CustomerID, order.Status, order.TotalAmount, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for i := range resolved {
		resolved[i].OrderID = order.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, resolved[i].ID, order.ID, resolved[i].ProductID, resolved[i].Quantity, resolved[i].UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("insert order item for product %s: %w", resolved[i].ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	order.Items = resolved
	return order, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// resolveOrderItems checks that every item's product exists and snapshots its
// catalog price. A positive UnitPrice on the input wins over the catalog
// price, but never skips the existence check.
func resolveOrderItems(ctx context.Context, q rowQuerier, items []entity.OrderItem) ([]entity.OrderItem, error) {
	resolved := make([]entity.OrderItem, len(items))
	for i, item := range items {
		var price decimal.Decimal
		err := q.QueryRow(ctx,
			"SELECT price FROM products WHERE id = $1", item.ProductID,
		).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
		}
		if !item.UnitPrice.IsZero() {
			price = item.UnitPrice
		}
		resolved[i] = entity.OrderItem{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		}
	}
	return resolved, nil
}

// GetByID loads an order with its items in a single joined query.
func (r *orderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.customer_id, o.status, o.total_amount, o.created_at, o.updated_at,
		       i.id, i.product_id, i.quantity, i.unit_price
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	defer rows.Close()

	var order *entity.Order
	for rows.Next() {
		var o entity.Order
		var itemID, productID *string
		var quantity *int
		var unitPrice *decimal.Decimal

		err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
			&itemID, &productID, &quantity, &unitPrice)
		if err != nil {
			return nil, fmt.Errorf("scan order %s: %w", id, err)
		}
		if order == nil {
			o.Items = []entity.OrderItem{}
			order = &o
		}
		if itemID != nil {
			order.Items = append(order.Items, entity.OrderItem{
				ID:        *itemID,
				OrderID:   order.ID,
				ProductID: *productID,
				Quantity:  *quantity,
				UnitPrice: *unitPrice,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order %s: %w", id, err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepo) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Order], error) {
	return r.list(ctx, req, "", nil)
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error) {
	return r.list(ctx, req, "customer_id", customerID)
}

func (r *orderRepo) ListByStatus(ctx context.Context, status entity.OrderStatus, req entity.PageRequest) (entity.Page[entity.Order], error) {
	return r.list(ctx, req, "status", status)
}

func (r *orderRepo) list(ctx context.Context, req entity.PageRequest, filterColumn string, filter any) (entity.Page[entity.Order], error) {
	req = req.Normalize()

	where := ""
	countArgs := []any{}
	if filterColumn != "" {
		where = fmt.Sprintf("WHERE %s = $3", filterColumn)
		countArgs = append(countArgs, filter)
	}

	countSQL := "SELECT COUNT(*) FROM orders"
	if filterColumn != "" {
		countSQL += fmt.Sprintf(" WHERE %s = $1", filterColumn)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return entity.Page[entity.Order]{}, fmt.Errorf("count orders: %w", err)
	}

	sql := fmt.Sprintf(`
		SELECT id, customer_id, status, total_amount, created_at, updated_at
		FROM orders %s %s LIMIT $1 OFFSET $2
	`, where, orderByClause(req, orderSortColumns))
	args := []any{req.PageSize, req.Offset()}
	if filterColumn != "" {
		args = append(args, filter)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.Page[entity.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return entity.Page[entity.Order]{}, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return entity.Page[entity.Order]{}, fmt.Errorf("iterate orders: %w", err)
	}

	return entity.NewPage(orders, total, req), nil
}
