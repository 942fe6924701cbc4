package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var received Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "msg-1"})
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "store@example.com")
	id, err := client.Send(context.Background(), Message{
		To:      []string{"maria@example.com"},
		Subject: "Welcome",
		HTML:    "<p>hi</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, []string{"maria@example.com"}, received.To)
	// The default from address is applied when the message leaves it empty.
	assert.Equal(t, "Payment Automation <store@example.com>", received.From)
}

func TestSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "store@example.com")
	_, err := client.Send(context.Background(), Message{To: []string{"x@example.com"}})

	assert.Error(t, err)
}

func TestPaymentConfirmationHTML(t *testing.T) {
	html, err := PaymentConfirmationHTML("Maria", "order-1", "39.80", "2026-08-28", []TemplateItem{
		{Name: "Widget", Quantity: 2, Price: 19.90},
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "#order-1")
	assert.Contains(t, html, "R$ 39.80")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "R$ 39.80")
}

func TestPaymentConfirmationHTMLEscapesInput(t *testing.T) {
	html, err := PaymentConfirmationHTML("<script>alert(1)</script>", "order-1", "1.00", "2026-08-28", nil)

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestPaymentFailedHTML(t *testing.T) {
	html, err := PaymentFailedHTML("Maria", "order-1", "card declined")

	require.NoError(t, err)
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "card declined")
}

func TestWelcomeHTML(t *testing.T) {
	html, err := WelcomeHTML("Maria")

	require.NoError(t, err)
	assert.Contains(t, html, "Maria")
}

func TestTemplateItemMath(t *testing.T) {
	item := TemplateItem{Name: "Widget", Quantity: 3, Price: 10.5}

	assert.Equal(t, "10.50", item.UnitPrice())
	assert.Equal(t, "31.50", item.Total())
}
