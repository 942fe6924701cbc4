package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"payment-automation/internal/entity"
	"payment-automation/internal/usecase"
)

func customerRouter(uc CustomerUseCaseInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCustomerHandler(uc)
	r.POST("/api/customers", h.Create)
	r.GET("/api/customers", h.List)
	r.GET("/api/customers/:id", h.Get)
	return r
}

func TestCustomerCreateEndpoint(t *testing.T) {
	uc := new(MockCustomerUseCase)
	created := entity.NewCustomer("Maria", "maria@example.com", "11999990000")
	uc.On("Create", mock.Anything, usecase.CreateCustomerInput{
		Name:  "Maria",
		Email: "maria@example.com",
		Phone: "11999990000",
	}).Return(created, nil)
	r := customerRouter(uc)

	body := `{"name":"Maria","email":"maria@example.com","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Status string          `json:"status"`
		Data   entity.Customer `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, created.ID, resp.Data.ID)
}

func TestCustomerCreateEndpointValidationError(t *testing.T) {
	uc := new(MockCustomerUseCase)
	uc.On("Create", mock.Anything, mock.Anything).
		Return(nil, usecase.Validation("email must be a valid email address"))
	r := customerRouter(uc)

	body := `{"name":"Maria","email":"nope","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email must be a valid email address")
}

func TestCustomerCreateEndpointConflict(t *testing.T) {
	uc := new(MockCustomerUseCase)
	uc.On("Create", mock.Anything, mock.Anything).
		Return(nil, usecase.Conflict("email %s is already registered", "maria@example.com"))
	r := customerRouter(uc)

	body := `{"name":"Maria","email":"maria@example.com","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomerGetEndpointNotFound(t *testing.T) {
	uc := new(MockCustomerUseCase)
	uc.On("Get", mock.Anything, "missing").Return(nil, usecase.NotFound("customer missing not found"))
	r := customerRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerListEndpointBindsPagination(t *testing.T) {
	uc := new(MockCustomerUseCase)
	uc.On("List", mock.Anything, entity.PageRequest{Page: 2, PageSize: 5, SortBy: "name", SortOrder: "asc"}).
		Return(entity.NewPage([]entity.Customer{}, 12, entity.PageRequest{Page: 2, PageSize: 5}.Normalize()), nil)
	r := customerRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/customers?page=2&pageSize=5&sortBy=name&sortOrder=asc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)
	uc.AssertExpectations(t)
}

func TestCustomerInternalErrorsStayGeneric(t *testing.T) {
	uc := new(MockCustomerUseCase)
	uc.On("Get", mock.Anything, "boom").Return(nil, assert.AnError)
	r := customerRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
