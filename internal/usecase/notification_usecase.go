package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"payment-automation/internal/email"
)

// PaymentConfirmationInput is the payload for a payment confirmation email.
type PaymentConfirmationInput struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	Amount        string
	PaymentDate   string
	Items         []email.TemplateItem
}

// PaymentFailedInput is the payload for a payment failure email.
type PaymentFailedInput struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	ErrorMessage  string
}

// WelcomeInput is the payload for a welcome email.
type WelcomeInput struct {
	CustomerName  string
	CustomerEmail string
}

// NotificationUseCase renders and dispatches transactional emails. Input is
// validated before the provider is ever called.
type NotificationUseCase struct {
	sender email.Sender
}

// NewNotificationUseCase wires the notification use case.
func NewNotificationUseCase(sender email.Sender) *NotificationUseCase {
	return &NotificationUseCase{sender: sender}
}

// SendPaymentConfirmation emails a payment receipt with the order lines.
func (uc *NotificationUseCase) SendPaymentConfirmation(ctx context.Context, in PaymentConfirmationInput) error {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.OrderNumber == "" ||
		in.Amount == "" || in.PaymentDate == "" {
		return Validation("customerName, customerEmail, orderNumber, amount and paymentDate are required")
	}
	if err := validateEmailAddress(in.CustomerEmail); err != nil {
		return err
	}

	html, err := email.PaymentConfirmationHTML(in.CustomerName, in.OrderNumber, in.Amount, in.PaymentDate, in.Items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegration, err)
	}
	return uc.send(ctx, in.CustomerEmail, "Payment Confirmed", html)
}

// SendPaymentFailed emails a payment failure notice.
func (uc *NotificationUseCase) SendPaymentFailed(ctx context.Context, in PaymentFailedInput) error {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.OrderNumber == "" || in.ErrorMessage == "" {
		return Validation("customerName, customerEmail, orderNumber and errorMessage are required")
	}
	if err := validateEmailAddress(in.CustomerEmail); err != nil {
		return err
	}

	html, err := email.PaymentFailedHTML(in.CustomerName, in.OrderNumber, in.ErrorMessage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegration, err)
	}
	return uc.send(ctx, in.CustomerEmail, "Problem With Your Payment", html)
}

// SendWelcome emails a signup greeting.
func (uc *NotificationUseCase) SendWelcome(ctx context.Context, in WelcomeInput) error {
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return Validation("customerName and customerEmail are required")
	}
	if err := validateEmailAddress(in.CustomerEmail); err != nil {
		return err
	}

	html, err := email.WelcomeHTML(in.CustomerName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegration, err)
	}
	return uc.send(ctx, in.CustomerEmail, "Welcome to our platform!", html)
}

func (uc *NotificationUseCase) send(ctx context.Context, to, subject, html string) error {
	id, err := uc.sender.Send(ctx, email.Message{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIntegration, err)
	}
	slog.InfoContext(ctx, "email sent", "to", to, "subject", subject, "provider_id", id)
	return nil
}

func validateEmailAddress(addr string) error {
	if err := validate.Var(addr, "email"); err != nil {
		return Validation("customerEmail must be a valid email address")
	}
	return nil
}
