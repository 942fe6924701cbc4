package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the states reported by Mercado Pago.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "PENDING"
	PaymentStatusApproved    PaymentStatus = "APPROVED"
	PaymentStatusRejected    PaymentStatus = "REJECTED"
	PaymentStatusInProcess   PaymentStatus = "IN_PROCESS"
	PaymentStatusInMediation PaymentStatus = "IN_MEDIATION"
	PaymentStatusCancelled   PaymentStatus = "CANCELLED"
	PaymentStatusRefunded    PaymentStatus = "REFUNDED"
	PaymentStatusChargedBack PaymentStatus = "CHARGED_BACK"
)

// ParsePaymentStatus validates a raw status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected,
		PaymentStatusInProcess, PaymentStatusInMediation, PaymentStatusCancelled,
		PaymentStatusRefunded, PaymentStatusChargedBack:
		return st, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// PaymentStatusFromProvider maps a Mercado Pago status string to the local
// enum. Unknown statuses stay PENDING so a later notification can settle them.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved":
		return PaymentStatusApproved
	case "rejected":
		return PaymentStatusRejected
	case "in_process", "pending_review":
		return PaymentStatusInProcess
	case "in_mediation":
		return PaymentStatusInMediation
	case "cancelled":
		return PaymentStatusCancelled
	case "refunded":
		return PaymentStatusRefunded
	case "charged_back":
		return PaymentStatusChargedBack
	default:
		return PaymentStatusPending
	}
}

// OrderStatusFor returns the order status implied by a payment outcome, or
// false when the outcome does not move the order.
func (s PaymentStatus) OrderStatusFor() (OrderStatus, bool) {
	switch s {
	case PaymentStatusApproved:
		return OrderStatusProcessing, true
	case PaymentStatusCancelled:
		return OrderStatusCancelled, true
	case PaymentStatusRefunded, PaymentStatusChargedBack:
		return OrderStatusRefunded, true
	default:
		return "", false
	}
}

// Payment is one charge attempt against an order. ExternalID is the Mercado
// Pago payment id and is the idempotency key for webhook processing.
type Payment struct {
	ID                 string          `json:"id" db:"id"`
	OrderID            string          `json:"order_id" db:"order_id"`
	ExternalID         string          `json:"external_id,omitempty" db:"external_id"`
	Status             PaymentStatus   `json:"status" db:"status"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	PaymentMethod      string          `json:"payment_method,omitempty" db:"payment_method"`
	PaymentURL         string          `json:"payment_url,omitempty" db:"payment_url"`
	TransactionDetails map[string]any  `json:"transaction_details,omitempty" db:"transaction_details"`
	NotificationSent   bool            `json:"notification_sent" db:"notification_sent"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// NewPayment builds a pending payment for an order.
func NewPayment(orderID string, amount decimal.Decimal) *Payment {
	now := time.Now().UTC()
	return &Payment{
		ID:                 uuid.New().String(),
		OrderID:            orderID,
		Status:             PaymentStatusPending,
		Amount:             amount,
		TransactionDetails: map[string]any{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
