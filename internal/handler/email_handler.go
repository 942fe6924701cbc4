package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-automation/internal/email"
	"payment-automation/internal/usecase"
)

type confirmationEmailRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	OrderNumber   string `json:"orderNumber"`
	Amount        string `json:"amount"`
	PaymentDate   string `json:"paymentDate"`
	Items         []struct {
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	} `json:"items"`
}

type failedEmailRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	OrderNumber   string `json:"orderNumber"`
	ErrorMessage  string `json:"errorMessage"`
}

type welcomeEmailRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// NotificationUseCaseInterface is the use case surface the handler depends on.
type NotificationUseCaseInterface interface {
	SendPaymentConfirmation(ctx context.Context, in usecase.PaymentConfirmationInput) error
	SendPaymentFailed(ctx context.Context, in usecase.PaymentFailedInput) error
	SendWelcome(ctx context.Context, in usecase.WelcomeInput) error
}

// EmailHandler exposes the transactional emails for direct dispatch.
type EmailHandler struct {
	useCase NotificationUseCaseInterface
}

// NewEmailHandler builds the email handler.
func NewEmailHandler(useCase NotificationUseCaseInterface) *EmailHandler {
	return &EmailHandler{useCase: useCase}
}

func (h *EmailHandler) SendConfirmation(c *gin.Context) {
	var req confirmationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	items := make([]email.TemplateItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = email.TemplateItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price}
	}

	err := h.useCase.SendPaymentConfirmation(c.Request.Context(), usecase.PaymentConfirmationInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		OrderNumber:   req.OrderNumber,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		Items:         items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "confirmation email sent")
}

func (h *EmailHandler) SendFailed(c *gin.Context) {
	var req failedEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.useCase.SendPaymentFailed(c.Request.Context(), usecase.PaymentFailedInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		OrderNumber:   req.OrderNumber,
		ErrorMessage:  req.ErrorMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "failure email sent")
}

func (h *EmailHandler) SendWelcome(c *gin.Context) {
	var req welcomeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := h.useCase.SendWelcome(c.Request.Context(), usecase.WelcomeInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "welcome email sent")
}
