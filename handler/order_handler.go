package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ordersys/order-backend/entity"
	orderpkg "github.com/ordersys/order-backend/order"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
}

func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

type createOrderItemPayload struct {
	ProductName string          `json:"product_name" binding:"required,max=200"`
	Quantity    int             `json:"quantity" binding:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type createOrderPayload struct {
	CustomerID uint                     `json:"customer_id" binding:"required"`
	OrderDate  *time.Time               `json:"order_date"`
	Items      []createOrderItemPayload `json:"items" binding:"required,min=1,dive"`
}

type updateOrderStatusPayload struct {
	Status entity.OrderStatus `json:"status" binding:"required,oneof=pending shipping completed cancelled"`
}

type orderItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CreateOrder places a new order for a customer.
func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		items := make([]orderpkg.CreateOrderItem, 0, len(p.Items))
		for _, it := range p.Items {
			// decimal fields are opaque to binding tags, checked here
			if it.UnitPrice.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unit_price must be non-negative"})
				return
			}
			items = append(items, orderpkg.CreateOrderItem{
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, orderpkg.CreateOrderRequest{
			CustomerID: p.CustomerID,
			OrderDate:  p.OrderDate,
			Items:      items,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":           created.ID,
			"total_amount": created.TotalAmount,
			"status":       created.Status,
		})
	}
}

// GetOrders lists orders page by page, newest order date first.
// GET /api/v1/orders?page=&page_size=
func (h *OrderHandler) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetOrdersPage(ctx, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       result.Items,
			"page":        result.Page,
			"page_size":   result.PageSize,
			"total_count": result.TotalCount,
		})
	}
}

// GetOrderByID returns one order with its item lines.
func (h *OrderHandler) GetOrderByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.GetOrderDetail(ctx, uint(id))
		if err != nil {
			respondError(c, err)
			return
		}

		items := make([]orderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, orderItemResponse{
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal(),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"id":           o.ID,
			"customer_id":  o.CustomerID,
			"order_date":   o.OrderDate,
			"status":       o.Status,
			"total_amount": o.TotalAmount,
			"items":        items,
		})
	}
}

// UpdateStatus moves an order through its lifecycle.
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var p updateOrderStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.UpdateStatus(ctx, uint(id), p.Status); err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
