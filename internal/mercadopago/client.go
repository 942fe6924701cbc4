// Package mercadopago is a thin REST client for the two Mercado Pago
// operations this service needs: creating checkout preferences and fetching
// payment details for webhook notifications.
package mercadopago

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// PreferenceItem is one line of a checkout preference.
type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"picture_url,omitempty"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

// Payer identifies who pays.
type Payer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BackURLs are the browser redirect targets after checkout.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the checkout preference creation payload.
type PreferenceRequest struct {
	Items               []PreferenceItem `json:"items"`
	Payer               Payer            `json:"payer"`
	ExternalReference   string           `json:"external_reference"`
	BackURLs            BackURLs         `json:"back_urls"`
	AutoReturn          string           `json:"auto_return,omitempty"`
	NotificationURL     string           `json:"notification_url,omitempty"`
	StatementDescriptor string           `json:"statement_descriptor,omitempty"`
}

// Preference is the created checkout preference.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	DateCreated      string `json:"date_created"`
}

// PaymentInfo is the subset of /v1/payments/{id} this service consumes.
type PaymentInfo struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	PaymentMethodID   string  `json:"payment_method_id"`
	PaymentTypeID     string  `json:"payment_type_id"`
	DateApproved      string  `json:"date_approved"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// Client talks to the Mercado Pago REST API.
type Client struct {
	http *resty.Client
}

// New builds a client for the given base URL and access token.
func New(baseURL, accessToken string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// CreatePreference registers a checkout preference and returns its id and
// checkout URLs.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	var pref Preference
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&pref).
		Post("/checkout/preferences")
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create preference: provider returned %s: %s", resp.Status(), resp.String())
	}
	return &pref, nil
}

// GetPayment fetches the current state of a provider payment.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	var info PaymentInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/v1/payments/" + paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get payment %s: provider returned %s", paymentID, resp.Status())
	}
	return &info, nil
}
