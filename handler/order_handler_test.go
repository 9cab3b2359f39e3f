package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersys/order-backend/apperr"
	"github.com/ordersys/order-backend/entity"
	orderpkg "github.com/ordersys/order-backend/order"
)

// stubOrderService returns canned results so the handler mapping can be
// tested in isolation.
type stubOrderService struct {
	createResult *entity.Order
	createErr    error
	updateErr    error
	pageResult   *orderpkg.OrdersPage
	detailResult *entity.Order
	detailErr    error

	gotCreate *orderpkg.CreateOrderRequest
	gotStatus entity.OrderStatus
}

func (s *stubOrderService) CreateOrder(_ context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	s.gotCreate = &req
	return s.createResult, s.createErr
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _ uint, newStatus entity.OrderStatus) error {
	s.gotStatus = newStatus
	return s.updateErr
}

func (s *stubOrderService) GetOrdersPage(_ context.Context, page, pageSize int) (*orderpkg.OrdersPage, error) {
	return s.pageResult, nil
}

func (s *stubOrderService) GetOrderDetail(_ context.Context, _ uint) (*entity.Order, error) {
	return s.detailResult, s.detailErr
}

func newOrderRouter(svc orderpkg.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(svc)
	r := gin.New()
	r.POST("/api/v1/orders", h.CreateOrder())
	r.GET("/api/v1/orders", h.GetOrders())
	r.GET("/api/v1/orders/:id", h.GetOrderByID())
	r.PATCH("/api/v1/orders/:id/status", h.UpdateStatus())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderHandler(t *testing.T) {
	svc := &stubOrderService{
		createResult: &entity.Order{
			ID:          7,
			CustomerID:  1,
			Status:      entity.OrderPending,
			TotalAmount: decimal.RequireFromString("300.00"),
		},
	}
	r := newOrderRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/orders",
		`{"customer_id":1,"items":[{"product_name":"pen","quantity":10,"unit_price":20.00},{"product_name":"notebook","quantity":2,"unit_price":50.00}]}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID          uint            `json:"id"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		Status      string          `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.ID)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, svc.gotCreate)
	require.Len(t, svc.gotCreate.Items, 2)
	assert.True(t, svc.gotCreate.Items[0].UnitPrice.Equal(decimal.RequireFromString("20")))
}

func TestCreateOrderHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing items", body: `{"customer_id":1}`},
		{name: "empty items", body: `{"customer_id":1,"items":[]}`},
		{name: "zero quantity", body: `{"customer_id":1,"items":[{"product_name":"pen","quantity":0,"unit_price":1}]}`},
		{name: "missing customer", body: `{"items":[{"product_name":"pen","quantity":1,"unit_price":1}]}`},
		{name: "negative unit price", body: `{"customer_id":1,"items":[{"product_name":"pen","quantity":1,"unit_price":-1}]}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubOrderService{}
			r := newOrderRouter(svc)

			w := doJSON(t, r, http.MethodPost, "/api/v1/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.gotCreate, "service must not be reached")
		})
	}
}

func TestCreateOrderHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantErrMsg string
	}{
		{
			name:       "business rule",
			err:        apperr.BusinessRule("daily order limit (5) exceeded"),
			wantCode:   http.StatusBadRequest,
			wantErrMsg: "daily order limit (5) exceeded",
		},
		{
			name:       "not found",
			err:        apperr.NotFound("customer not found"),
			wantCode:   http.StatusNotFound,
			wantErrMsg: "customer not found",
		},
		{
			name:       "unexpected",
			err:        errors.New("connection reset"),
			wantCode:   http.StatusInternalServerError,
			wantErrMsg: "unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newOrderRouter(&stubOrderService{createErr: tt.err})

			w := doJSON(t, r, http.MethodPost, "/api/v1/orders",
				`{"customer_id":1,"items":[{"product_name":"pen","quantity":1,"unit_price":1}]}`)

			require.Equal(t, tt.wantCode, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErrMsg, resp["error"])
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := &stubOrderService{}
	r := newOrderRouter(svc)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"completed"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, entity.OrderCompleted, svc.gotStatus)
}

func TestUpdateStatusHandlerRejectsUnknownStatus(t *testing.T) {
	r := newOrderRouter(&stubOrderService{})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHandlerInvalidID(t *testing.T) {
	r := newOrderRouter(&stubOrderService{})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/orders/abc/status", `{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersHandler(t *testing.T) {
	r := newOrderRouter(&stubOrderService{
		pageResult: &orderpkg.OrdersPage{
			Items:      []entity.Order{{ID: 1, CustomerID: 1, Status: entity.OrderPending}},
			Page:       1,
			PageSize:   20,
			TotalCount: 1,
		},
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/orders?page=0&page_size=500", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalCount int64 `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Equal(t, int64(1), resp.TotalCount)
}

func TestGetOrdersHandlerRejectsNonNumericPaging(t *testing.T) {
	r := newOrderRouter(&stubOrderService{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/orders?page=abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByIDHandler(t *testing.T) {
	r := newOrderRouter(&stubOrderService{
		detailResult: &entity.Order{
			ID:          3,
			CustomerID:  1,
			Status:      entity.OrderPending,
			TotalAmount: decimal.RequireFromString("7.00"),
			Items: []entity.OrderItem{
				{ProductName: "pen", Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
			},
		},
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/orders/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		ID    uint `json:"id"`
		Items []struct {
			ProductName string          `json:"product_name"`
			LineTotal   decimal.Decimal `json:"line_total"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(3), resp.ID)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.RequireFromString("7")))
}

func TestGetOrderByIDHandlerNotFound(t *testing.T) {
	r := newOrderRouter(&stubOrderService{detailErr: apperr.NotFound("order not found")})

	w := doJSON(t, r, http.MethodGet, "/api/v1/orders/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
