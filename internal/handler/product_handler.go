package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Active      *bool           `json:"active"`
}

// ProductUseCaseInterface is the use case surface the handler depends on.
type ProductUseCaseInterface interface {
	Create(ctx context.Context, in usecase.CreateProductInput) (*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, search string, req entity.PageRequest) (entity.Page[entity.Product], error)
	Update(ctx context.Context, id string, in usecase.UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductHandler exposes catalog CRUD over HTTP.
type ProductHandler struct {
	useCase ProductUseCaseInterface
}

// NewProductHandler builds the product handler.
func NewProductHandler(useCase ProductUseCaseInterface) *ProductHandler {
	return &ProductHandler{useCase: useCase}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	product, err := h.useCase.Create(c.Request.Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

// List pages the catalog; ?search= narrows by name substring.
func (h *ProductHandler) List(c *gin.Context) {
	var req entity.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.useCase.List(c.Request.Context(), c.Query("search"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	product, err := h.useCase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Active:      active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "product deleted")
}
