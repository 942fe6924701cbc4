// Package email sends transactional emails through the Resend REST API.
package email

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Message is one outgoing email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Sender dispatches a single email and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Client is a Resend-backed Sender.
type Client struct {
	http *resty.Client
	from string
}

// New builds a Resend client. from is the default sender address.
func New(baseURL, apiKey, from string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http, from: from}
}

// Send posts the message to /emails. The configured from address is applied
// when the message does not set one.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if msg.From == "" {
		msg.From = fmt.Sprintf("Payment Automation <%s>", c.from)
	}

	var result sendResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("send email: provider returned %s: %s", resp.Status(), resp.String())
	}
	return result.ID, nil
}
