package email

import (
	"fmt"
	"html/template"
	"strings"
)

// TemplateItem is one order line rendered in the confirmation email.
type TemplateItem struct {
	Name     string
	Quantity int
	Price    float64
}

func (i TemplateItem) Total() string {
	return fmt.Sprintf("%.2f", i.Price*float64(i.Quantity))
}

func (i TemplateItem) UnitPrice() string {
	return fmt.Sprintf("%.2f", i.Price)
}

var paymentConfirmationTmpl = template.Must(template.New("payment-confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payment Confirmed</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="padding: 20px; border-radius: 5px;">
    <h2 style="color: #2c3e50;">Payment Confirmed</h2>
    <p>Hello {{.CustomerName}},</p>
    <p>Your payment was processed successfully!</p>
    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
      <p><strong>Order:</strong> #{{.OrderNumber}}</p>
      <p><strong>Amount:</strong> R$ {{.Amount}}</p>
      <p><strong>Date:</strong> {{.PaymentDate}}</p>
    </div>
    <h3>Order Details</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="background-color: #f8f9fa;">
          <th style="padding: 10px; text-align: left;">Item</th>
          <th style="padding: 10px; text-align: center;">Qty</th>
          <th style="padding: 10px; text-align: right;">Price</th>
          <th style="padding: 10px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td style="padding: 10px; border-bottom: 1px solid #eee;">{{.Name}}</td>
          <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">R$ {{.UnitPrice}}</td>
          <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">R$ {{.Total}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr>
          <td colspan="3" style="padding: 10px; text-align: right;"><strong>Total:</strong></td>
          <td style="padding: 10px; text-align: right;"><strong>R$ {{.Amount}}</strong></td>
        </tr>
      </tfoot>
    </table>
    <p>Thank you for your purchase!</p>
    <p>Best regards,<br>Support Team</p>
  </div>
</body>
</html>`))

var paymentFailedTmpl = template.Must(template.New("payment-failed").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payment Problem</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="padding: 20px; border-radius: 5px;">
    <h2 style="color: #e74c3c;">Problem With Your Payment</h2>
    <p>Hello {{.CustomerName}},</p>
    <p>We found a problem while processing your payment for order #{{.OrderNumber}}.</p>
    <div style="background-color: #fff3f3; padding: 15px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #e74c3c;">
      <p><strong>Reason:</strong> {{.ErrorMessage}}</p>
    </div>
    <p>Please try again or contact our support team if you need help.</p>
    <p>Best regards,<br>Support Team</p>
  </div>
</body>
</html>`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Welcome!</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="padding: 20px; border-radius: 5px;">
    <h2 style="color: #2c3e50;">Welcome to our platform!</h2>
    <p>Hello {{.CustomerName}},</p>
    <p>We are glad to have you with us! Your account was created successfully.</p>
    <div style="background-color: #f5f8fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
      <p>With our platform you can:</p>
      <ul>
        <li>Manage your orders with ease</li>
        <li>Pay securely</li>
        <li>Track the status of your orders</li>
        <li>Reach our support team</li>
      </ul>
    </div>
    <p>Best regards,<br>Support Team</p>
  </div>
</body>
</html>`))

// PaymentConfirmationHTML renders the payment confirmation email body.
func PaymentConfirmationHTML(customerName, orderNumber, amount, paymentDate string, items []TemplateItem) (string, error) {
	var b strings.Builder
	err := paymentConfirmationTmpl.Execute(&b, map[string]any{
		"CustomerName": customerName,
		"OrderNumber":  orderNumber,
		"Amount":       amount,
		"PaymentDate":  paymentDate,
		"Items":        items,
	})
	if err != nil {
		return "", fmt.Errorf("render payment confirmation template: %w", err)
	}
	return b.String(), nil
}

// PaymentFailedHTML renders the payment failure email body.
func PaymentFailedHTML(customerName, orderNumber, errorMessage string) (string, error) {
	var b strings.Builder
	err := paymentFailedTmpl.Execute(&b, map[string]any{
		"CustomerName": customerName,
		"OrderNumber":  orderNumber,
		"ErrorMessage": errorMessage,
	})
	if err != nil {
		return "", fmt.Errorf("render payment failed template: %w", err)
	}
	return b.String(), nil
}

// WelcomeHTML renders the welcome email body.
func WelcomeHTML(customerName string) (string, error) {
	var b strings.Builder
	err := welcomeTmpl.Execute(&b, map[string]any{"CustomerName": customerName})
	if err != nil {
		return "", fmt.Errorf("render welcome template: %w", err)
	}
	return b.String(), nil
}
