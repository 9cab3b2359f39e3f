package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ordersys/order-backend/apperr"
)

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending" // created, awaiting completion or cancellation
	// OrderShipping is the in-transit intermediate state. No enforced
	// transition reaches it today; it stays in the set for API compatibility.
	OrderShipping  OrderStatus = "shipping"
	OrderCompleted OrderStatus = "completed" // terminal
	OrderCancelled OrderStatus = "cancelled" // terminal
)

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipping, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ValidateTransition checks whether an order in the current status may move
// to target. Completed and cancelled are terminal; only pending orders may
// move, and only to completed or cancelled.
func ValidateTransition(current, target OrderStatus) error {
	switch current {
	case OrderCancelled:
		return apperr.BusinessRule("cancelled orders are immutable")
	case OrderCompleted:
		return apperr.BusinessRule("completed orders are immutable")
	case OrderPending:
		if target != OrderCompleted && target != OrderCancelled {
			return apperr.BusinessRule("invalid transition from pending")
		}
		return nil
	}
	return apperr.BusinessRule("invalid status transition")
}

// Order captures a customer's purchase and exclusively owns its items.
// TotalAmount is always derived from the items, never caller-supplied.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CustomerID  uint            `json:"customer_id" gorm:"index:idx_orders_customer_day;not null"`
	OrderDate   time.Time       `json:"order_date" gorm:"index:idx_orders_customer_day;not null"`
	Status      OrderStatus     `json:"status" gorm:"type:text;not null;default:'pending'"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(15,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"index;not null"`
	ProductName string          `json:"product_name" gorm:"type:varchar(200);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:numeric(15,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LineTotal is quantity times unit price in exact decimal arithmetic.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
