package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-automation/internal/usecase"
)

// WebhookProcessorInterface is the use case surface the handler depends on.
type WebhookProcessorInterface interface {
	ProcessWebhook(ctx context.Context, payload usecase.WebhookPayload) error
}

// WebhookHandler receives Mercado Pago notifications. The provider retries on
// anything but 2xx, so this endpoint acknowledges every delivery and keeps
// failures on the server side of the fence.
type WebhookHandler struct {
	useCase WebhookProcessorInterface
}

// NewWebhookHandler builds the webhook handler.
func NewWebhookHandler(useCase WebhookProcessorInterface) *WebhookHandler {
	return &WebhookHandler{useCase: useCase}
}

// MercadoPago handles POST notifications. Always answers 200.
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	var payload usecase.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.WarnContext(c.Request.Context(), "webhook body unreadable", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	// Some notification modes put the ids in the query string instead.
	if payload.Type == "" {
		payload.Type = c.Query("type")
	}
	if payload.Data.ID == "" {
		payload.Data.ID = c.Query("data.id")
	}

	if err := h.useCase.ProcessWebhook(c.Request.Context(), payload); err != nil {
		slog.ErrorContext(c.Request.Context(), "webhook processing failed",
			"type", payload.Type, "data_id", payload.Data.ID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
