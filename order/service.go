package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ordersys/order-backend/entity"
)

// CreateOrderItem is one requested line of a new order.
type CreateOrderItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateOrderRequest carries the data required to place an order.
// OrderDate defaults to the current UTC time when nil.
type CreateOrderRequest struct {
	CustomerID uint
	OrderDate  *time.Time
	Items      []CreateOrderItem
}

// OrdersPage is one slice of the order list plus pagination metadata.
// Page and PageSize are the effective (clamped) values.
type OrdersPage struct {
	Items      []entity.Order
	Page       int
	PageSize   int
	TotalCount int64
}

// EventPublisher receives lifecycle notifications after successful commits.
// Publishing is best-effort and must never affect the operation outcome.
type EventPublisher interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(orderID uint, from, to entity.OrderStatus)
}

// Service exposes the order lifecycle and read operations.
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, newStatus entity.OrderStatus) error
	GetOrdersPage(ctx context.Context, page, pageSize int) (*OrdersPage, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*entity.Order, error)
}
