package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

type createCheckoutRequest struct {
	OrderID string `json:"order_id"`
}

// PaymentUseCaseInterface is the use case surface the handler depends on.
type PaymentUseCaseInterface interface {
	CreateCheckout(ctx context.Context, orderID string) (*usecase.CheckoutResult, error)
	Get(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Payment], error)
	ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error)
}

// PaymentHandler exposes checkout creation, payment queries and the browser
// redirect targets Mercado Pago sends buyers back to.
type PaymentHandler struct {
	useCase     PaymentUseCaseInterface
	frontendURL string
}

// NewPaymentHandler builds the payment handler. frontendURL is where buyers
// land after checkout.
func NewPaymentHandler(useCase PaymentUseCaseInterface, frontendURL string) *PaymentHandler {
	return &PaymentHandler{useCase: useCase, frontendURL: frontendURL}
}

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "order_id is required")
		return
	}

	result, err := h.useCase.CreateCheckout(c.Request.Context(), req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, result)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

// List pages payments; ?status= narrows by payment status.
func (h *PaymentHandler) List(c *gin.Context) {
	var req entity.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.useCase.List(c.Request.Context(), c.Query("status"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	payments, err := h.useCase.ListByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payments)
}

// Success, Failure and Pending bounce the buyer's browser back to the
// storefront with the checkout outcome in the query string. Provider query
// parameters are passed along untouched.
func (h *PaymentHandler) Success(c *gin.Context) { h.redirect(c, "success") }
func (h *PaymentHandler) Failure(c *gin.Context) { h.redirect(c, "failure") }
func (h *PaymentHandler) Pending(c *gin.Context) { h.redirect(c, "pending") }

func (h *PaymentHandler) redirect(c *gin.Context, outcome string) {
	target := h.frontendURL + "/checkout/" + outcome
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	c.Redirect(http.StatusFound, target)
}
