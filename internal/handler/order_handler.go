package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

type orderItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type createOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []orderItemRequest `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderUseCaseInterface is the use case surface the handler depends on.
type OrderUseCaseInterface interface {
	Create(ctx context.Context, customerID string, items []usecase.OrderItemInput) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, status string, req entity.PageRequest) (entity.Page[entity.Order], error)
	ListByCustomer(ctx context.Context, customerID string, req entity.PageRequest) (entity.Page[entity.Order], error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
	Cancel(ctx context.Context, id string) (*entity.Order, error)
}

// OrderHandler exposes order creation and lifecycle over HTTP.
type OrderHandler struct {
	useCase OrderUseCaseInterface
}

// NewOrderHandler builds the order handler.
func NewOrderHandler(useCase OrderUseCaseInterface) *OrderHandler {
	return &OrderHandler{useCase: useCase}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "customer_id and items are required")
		return
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	order, err := h.useCase.Create(c.Request.Context(), req.CustomerID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// List pages orders; ?status= narrows by order status.
func (h *OrderHandler) List(c *gin.Context) {
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

func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	var req entity.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.useCase.ListByCustomer(c.Request.Context(), c.Param("customerId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	order, err := h.useCase.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// Cancel handles DELETE on an order; orders are cancelled, never erased.
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.useCase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
