package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"payment-automation/internal/email"
	"payment-automation/internal/entity"
	"payment-automation/internal/mercadopago"
	"payment-automation/internal/repository"
)

// MercadoPagoAPI is the provider surface the payment use case needs.
type MercadoPagoAPI interface {
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.PaymentInfo, error)
}

// WebhookPayload is the Mercado Pago notification body. Only payment events
// carry anything actionable.
type WebhookPayload struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
	LiveMode bool `json:"live_mode"`
}

// CheckoutResult is what the checkout endpoint returns to the storefront.
type CheckoutResult struct {
	PaymentID    string `json:"payment_id"`
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// CheckoutURLs carries the externally visible addresses used in preferences.
type CheckoutURLs struct {
	// APIBaseURL is the public base of this API, prefix included.
	APIBaseURL string
}

// PaymentUseCase creates checkout preferences and settles provider
// notifications against local payment and order state.
type PaymentUseCase struct {
	payments      repository.PaymentRepository
	orders        repository.OrderRepository
	customers     repository.CustomerRepository
	products      repository.ProductRepository
	provider      MercadoPagoAPI
	notifications *NotificationUseCase // nil-safe: emails skipped if nil
	urls          CheckoutURLs
}

// NewPaymentUseCase wires the payment use case. notifications may be nil.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	provider MercadoPagoAPI,
	notifications *NotificationUseCase,
	urls CheckoutURLs,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:      payments,
		orders:        orders,
		customers:     customers,
		products:      products,
		provider:      provider,
		notifications: notifications,
		urls:          urls,
	}
}

// CreateCheckout builds a Mercado Pago preference for an order and records a
// pending payment pointing at the checkout URL. The order id travels as the
// external reference so webhooks can find their way back.
func (uc *PaymentUseCase) CreateCheckout(ctx context.Context, orderID string) (*CheckoutResult, error) {
	if orderID == "" {
		return nil, Validation("orderId is required")
	}

	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("order %s not found", orderID)
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order.Status.Terminal() {
		return nil, DomainRule("order %s is %s and cannot be charged", orderID, order.Status)
	}

	customer, err := uc.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("customer %s not found", order.CustomerID)
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	prefItems := make([]mercadopago.PreferenceItem, len(order.Items))
	for i, item := range order.Items {
		title := "Item"
		var picture string
		if product, err := uc.products.GetByID(ctx, item.ProductID); err == nil {
			title = product.Name
			picture = product.ImageURL
		}
		prefItems[i] = mercadopago.PreferenceItem{
			ID:         item.ProductID,
			Title:      title,
			PictureURL: picture,
			Quantity:   item.Quantity,
			CurrencyID: "BRL",
			UnitPrice:  item.UnitPrice.InexactFloat64(),
		}
	}

	pref, err := uc.provider.CreatePreference(ctx, mercadopago.PreferenceRequest{
		Items:             prefItems,
		Payer:             mercadopago.Payer{Name: customer.Name, Email: customer.Email},
		ExternalReference: order.ID,
		BackURLs: mercadopago.BackURLs{
			Success: uc.urls.APIBaseURL + "/payments/success",
			Failure: uc.urls.APIBaseURL + "/payments/failure",
			Pending: uc.urls.APIBaseURL + "/payments/pending",
		},
		AutoReturn:          "approved",
		NotificationURL:     uc.urls.APIBaseURL + "/webhooks/mercadopago",
		StatementDescriptor: "Payment Automation",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIntegration, err)
	}

	payment := entity.NewPayment(order.ID, order.TotalAmount)
	payment.PaymentURL = pref.InitPoint
	payment.TransactionDetails["preference_id"] = pref.ID
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return &CheckoutResult{
		PaymentID:    payment.ID,
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	}, nil
}

// Get returns a payment or a not-found error.
func (uc *PaymentUseCase) Get(ctx context.Context, id string) (*entity.Payment, error) {
	payment, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("payment %s not found", id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// List returns one page of payments, optionally filtered by status.
func (uc *PaymentUseCase) List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Payment], error) {
	if status == "" {
		return uc.payments.List(ctx, req)
	}
	parsed, err := entity.ParsePaymentStatus(status)
	if err != nil {
		return entity.Page[entity.Payment]{}, Validation("%s", err.Error())
	}
	return uc.payments.ListByStatus(ctx, parsed, req)
}

// ListByOrder returns every payment recorded against an order.
func (uc *PaymentUseCase) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	return uc.payments.ListByOrder(ctx, orderID)
}

// ProcessWebhook settles a provider notification. Processing is idempotent by
// the provider payment id: replays of an already-settled notification are
// no-ops. Callers always answer the provider with success; errors returned
// here are for logging only.
func (uc *PaymentUseCase) ProcessWebhook(ctx context.Context, payload WebhookPayload) error {
	if payload.Type != "payment" || payload.Data.ID == "" {
		slog.InfoContext(ctx, "webhook ignored", "type", payload.Type, "action", payload.Action)
		return nil
	}

	info, err := uc.provider.GetPayment(ctx, payload.Data.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegration, err)
	}

	externalID := strconv.FormatInt(info.ID, 10)
	status := entity.PaymentStatusFromProvider(info.Status)

	payment, err := uc.payments.GetByExternalID(ctx, externalID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		payment, err = uc.adoptProviderPayment(ctx, externalID, info, status)
		if err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("look up payment %s: %w", externalID, err)
	default:
		if payment.Status == status && payment.NotificationSent {
			slog.InfoContext(ctx, "webhook replay ignored", "external_id", externalID, "status", status)
			return nil
		}
		payment.Status = status
		payment.PaymentMethod = info.PaymentMethodID
		payment.TransactionDetails["status_detail"] = info.StatusDetail
		payment.TransactionDetails["payment_type"] = info.PaymentTypeID
		if err := uc.payments.Update(ctx, payment); err != nil {
			return fmt.Errorf("update payment %s: %w", payment.ID, err)
		}
	}

	uc.syncOrderStatus(ctx, payment.OrderID, status)

	if !payment.NotificationSent && uc.notifyOutcome(ctx, payment, info, status) {
		if err := uc.payments.MarkNotified(ctx, payment.ID); err != nil {
			slog.ErrorContext(ctx, "mark payment notified", "payment_id", payment.ID, "error", err)
		}
	}
	return nil
}

// adoptProviderPayment attaches a provider payment first seen through a
// webhook to its order, found by the external reference. A pending row left
// by checkout is claimed instead of inserting a second one.
func (uc *PaymentUseCase) adoptProviderPayment(ctx context.Context, externalID string, info *mercadopago.PaymentInfo, status entity.PaymentStatus) (*entity.Payment, error) {
	if info.ExternalReference == "" {
		return nil, fmt.Errorf("payment %s has no external reference", externalID)
	}
	order, err := uc.orders.GetByID(ctx, info.ExternalReference)
	if err != nil {
		return nil, fmt.Errorf("order %s for payment %s: %w", info.ExternalReference, externalID, err)
	}

	if existing, err := uc.payments.ListByOrder(ctx, order.ID); err == nil {
		for i := range existing {
			if existing[i].ExternalID == "" && existing[i].Status == entity.PaymentStatusPending {
				claimed := existing[i]
				claimed.ExternalID = externalID
				claimed.Status = status
				claimed.PaymentMethod = info.PaymentMethodID
				if claimed.TransactionDetails == nil {
					claimed.TransactionDetails = map[string]any{}
				}
				claimed.TransactionDetails["status_detail"] = info.StatusDetail
				claimed.TransactionDetails["payment_type"] = info.PaymentTypeID
				if err := uc.payments.Update(ctx, &claimed); err != nil {
					return nil, fmt.Errorf("claim pending payment %s: %w", claimed.ID, err)
				}
				return &claimed, nil
			}
		}
	}

	payment := entity.NewPayment(order.ID, decimal.NewFromFloat(info.TransactionAmount))
	payment.ExternalID = externalID
	payment.Status = status
	payment.PaymentMethod = info.PaymentMethodID
	payment.TransactionDetails["status_detail"] = info.StatusDetail
	payment.TransactionDetails["payment_type"] = info.PaymentTypeID
	if err := uc.payments.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Concurrent webhook delivery won the race; reload its row.
			return uc.payments.GetByExternalID(ctx, externalID)
		}
		return nil, fmt.Errorf("record provider payment %s: %w", externalID, err)
	}
	return payment, nil
}

// syncOrderStatus moves the order according to the payment outcome, skipping
// edges the transition table forbids.
func (uc *PaymentUseCase) syncOrderStatus(ctx context.Context, orderID string, status entity.PaymentStatus) {
	next, ok := status.OrderStatusFor()
	if !ok {
		return
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		slog.ErrorContext(ctx, "load order for status sync", "order_id", orderID, "error", err)
		return
	}
	if order.Status == next || !order.Status.CanTransitionTo(next) {
		return
	}
	if err := uc.orders.UpdateStatus(ctx, orderID, next); err != nil {
		slog.ErrorContext(ctx, "sync order status", "order_id", orderID, "status", next, "error", err)
	}
}

// notifyOutcome emails the customer about a settled payment. Returns true
// when an email actually went out.
func (uc *PaymentUseCase) notifyOutcome(ctx context.Context, payment *entity.Payment, info *mercadopago.PaymentInfo, status entity.PaymentStatus) bool {
	if uc.notifications == nil {
		return false
	}
	if status != entity.PaymentStatusApproved && status != entity.PaymentStatusRejected {
		return false
	}

	order, err := uc.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		slog.ErrorContext(ctx, "load order for notification", "order_id", payment.OrderID, "error", err)
		return false
	}
	customer, err := uc.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		slog.ErrorContext(ctx, "load customer for notification", "customer_id", order.CustomerID, "error", err)
		return false
	}

	if status == entity.PaymentStatusApproved {
		items := make([]email.TemplateItem, len(order.Items))
		for i, item := range order.Items {
			name := "Item"
			if product, err := uc.products.GetByID(ctx, item.ProductID); err == nil {
				name = product.Name
			}
			items[i] = email.TemplateItem{
				Name:     name,
				Quantity: item.Quantity,
				Price:    item.UnitPrice.InexactFloat64(),
			}
		}
		err = uc.notifications.SendPaymentConfirmation(ctx, PaymentConfirmationInput{
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			OrderNumber:   order.ID,
			Amount:        order.TotalAmount.StringFixed(2),
			PaymentDate:   paymentDate(info),
			Items:         items,
		})
	} else {
		reason := info.StatusDetail
		if reason == "" {
			reason = "payment rejected by the provider"
		}
		err = uc.notifications.SendPaymentFailed(ctx, PaymentFailedInput{
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			OrderNumber:   order.ID,
			ErrorMessage:  reason,
		})
	}
	if err != nil {
		slog.ErrorContext(ctx, "payment notification not sent", "payment_id", payment.ID, "error", err)
		return false
	}
	return true
}

func paymentDate(info *mercadopago.PaymentInfo) string {
	if info.DateApproved != "" {
		return info.DateApproved
	}
	return time.Now().UTC().Format(time.RFC3339)
}
