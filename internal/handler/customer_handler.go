package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerUseCaseInterface is the use case surface the handler depends on.
type CustomerUseCaseInterface interface {
	Create(ctx context.Context, in usecase.CreateCustomerInput) (*entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, req entity.PageRequest) (entity.Page[entity.Customer], error)
	Update(ctx context.Context, id string, in usecase.UpdateCustomerInput) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CustomerHandler exposes customer CRUD over HTTP.
type CustomerHandler struct {
	useCase CustomerUseCaseInterface
}

// NewCustomerHandler builds the customer handler.
func NewCustomerHandler(useCase CustomerUseCaseInterface) *CustomerHandler {
	return &CustomerHandler{useCase: useCase}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	customer, err := h.useCase.Create(c.Request.Context(), usecase.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var req entity.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.useCase.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	customer, err := h.useCase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "customer deleted")
}
