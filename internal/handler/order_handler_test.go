package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

func orderRouter(uc OrderUseCaseInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOrderHandler(uc)
	r.POST("/api/orders", h.Create)
	r.GET("/api/orders/:id", h.Get)
	r.PATCH("/api/orders/:id/status", h.UpdateStatus)
	r.DELETE("/api/orders/:id", h.Cancel)
	return r
}

func TestOrderCreateEndpoint(t *testing.T) {
	uc := new(MockOrderUseCase)
	order := entity.NewOrder("cust-1", []entity.OrderItem{
		{ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.RequireFromString("19.90")},
	})
	uc.On("Create", mock.Anything, "cust-1", []usecase.OrderItemInput{
		{ProductID: "prod-1", Quantity: 2},
	}).Return(order, nil)
	r := orderRouter(uc)

	body := `{"customer_id":"cust-1","items":[{"product_id":"prod-1","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total_amount":"39.8"`)
	uc.AssertExpectations(t)
}

func TestOrderCreateEndpointUnknownProduct(t *testing.T) {
	uc := new(MockOrderUseCase)
	uc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, usecase.NotFound("product ghost not found"))
	r := orderRouter(uc)

	body := `{"customer_id":"cust-1","items":[{"product_id":"ghost","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderStatusPatchForbiddenTransition(t *testing.T) {
	uc := new(MockOrderUseCase)
	uc.On("UpdateStatus", mock.Anything, "order-1", "COMPLETED").
		Return(nil, usecase.DomainRule("order order-1 cannot move from PENDING to COMPLETED"))
	r := orderRouter(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/status", strings.NewReader(`{"status":"COMPLETED"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot move from PENDING to COMPLETED")
}

func TestOrderCancelEndpoint(t *testing.T) {
	uc := new(MockOrderUseCase)
	order := entity.NewOrder("cust-1", nil)
	order.Status = entity.OrderStatusCancelled
	uc.On("Cancel", mock.Anything, order.ID).Return(order, nil)
	r := orderRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+order.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"CANCELLED"`)
}

func TestOrderCancelCompletedEndpoint(t *testing.T) {
	uc := new(MockOrderUseCase)
	uc.On("Cancel", mock.Anything, "order-1").
		Return(nil, usecase.DomainRule("completed orders cannot be cancelled"))
	r := orderRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/order-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "completed orders cannot be cancelled")
}
