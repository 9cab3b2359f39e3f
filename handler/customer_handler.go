package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	customerpkg "github.com/ordersys/order-backend/customer"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type registerCustomerPayload struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email,max=200"`
}

// RegisterCustomer creates a customer with a unique email.
func (h *CustomerHandler) RegisterCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterCustomer(ctx, customerpkg.RegisterCustomerRequest{
			Name:  p.Name,
			Email: p.Email,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": created.ID})
	}
}

// ListCustomers returns all customers, most recently created first.
func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, err := h.service.ListCustomers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
