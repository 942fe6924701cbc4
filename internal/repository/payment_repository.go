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

type paymentRepo struct {
	db *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed payment repository.
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepo{db: db}
}

var paymentSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"amount":     true,
}

const paymentColumns = `id, order_id, external_id, status, amount, payment_method,
	payment_url, transaction_details, notification_sent, created_at, updated_at`

func (r *paymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if p.TransactionDetails == nil {
		p.TransactionDetails = map[string]any{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, order_id, external_id, status, amount, payment_method,
			payment_url, transaction_details, notification_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.OrderID, p.ExternalID, p.Status, p.Amount, p.PaymentMethod,
		p.PaymentURL, p.TransactionDetails, p.NotificationSent, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: external id already recorded", ErrDuplicate)
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return r.getBy(ctx, "id", id)
}

func (r *paymentRepo) GetByExternalID(ctx context.Context, externalID string) (*entity.Payment, error) {
	return r.getBy(ctx, "external_id", externalID)
}

func (r *paymentRepo) getBy(ctx context.Context, column, value string) (*entity.Payment, error) {
	var p entity.Payment
	err := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE `+column+` = $1`, value,
	).Scan(&p.ID, &p.OrderID, &p.ExternalID, &p.Status, &p.Amount, &p.PaymentMethod,
		&p.PaymentURL, &p.TransactionDetails, &p.NotificationSent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment by %s: %w", column, err)
	}
	return &p, nil
}

func (r *paymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	p.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET external_id = $1, status = $2, amount = $3, payment_method = $4,
		    payment_url = $5, transaction_details = $6, notification_sent = $7, updated_at = $8
		WHERE id = $9
	`, p.ExternalID, p.Status, p.Amount, p.PaymentMethod,
		p.PaymentURL, p.TransactionDetails, p.NotificationSent, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update payment %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update payment %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepo) MarkNotified(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET notification_sent = TRUE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("mark payment %s notified: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY created_at DESC`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments for order %s: %w", orderID, err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	return r.list(ctx, req, "")
}

func (r *paymentRepo) ListByStatus(ctx context.Context, status entity.PaymentStatus, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	return r.list(ctx, req, status)
}

func (r *paymentRepo) list(ctx context.Context, req entity.PageRequest, status entity.PaymentStatus) (entity.Page[entity.Payment], error) {
	req = req.Normalize()

	countSQL := "SELECT COUNT(*) FROM payments"
	countArgs := []any{}
	where := ""
	if status != "" {
		countSQL += " WHERE status = $1"
		countArgs = append(countArgs, status)
		where = "WHERE status = $3"
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return entity.Page[entity.Payment]{}, fmt.Errorf("count payments: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM payments %s %s LIMIT $1 OFFSET $2`,
		paymentColumns, where, orderByClause(req, paymentSortColumns))
	args := []any{req.PageSize, req.Offset()}
	if status != "" {
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.Page[entity.Payment]{}, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments, err := scanPayments(rows)
	if err != nil {
		return entity.Page[entity.Payment]{}, err
	}
	return entity.NewPage(payments, total, req), nil
}

func scanPayments(rows pgx.Rows) ([]entity.Payment, error) {
	var payments []entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(&p.ID, &p.OrderID, &p.ExternalID, &p.Status, &p.Amount, &p.PaymentMethod,
			&p.PaymentURL, &p.TransactionDetails, &p.NotificationSent, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
