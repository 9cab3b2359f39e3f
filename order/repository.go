package order

import (
	"context"
	"errors"
	"time"

	"github.com/ordersys/order-backend/entity"
)

// ErrOrderNotFound is returned by lookups when no order has the given id.
var ErrOrderNotFound = errors.New("order does not exist")

// Repository defines DB operations for orders and their items.
type Repository interface {
	// CreateOrder persists the order together with its items as a single
	// transaction; callers never observe a partial item set.
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)

	GetOrderByID(ctx context.Context, id uint) (*entity.Order, error)

	// GetOrderWithItems loads the order and its item lines for the detail view.
	GetOrderWithItems(ctx context.Context, id uint) (*entity.Order, error)

	UpdateOrderStatus(ctx context.Context, id uint, status entity.OrderStatus) error

	// CountOrdersForDay counts orders of the customer whose order date falls
	// in [dayStart, dayEnd). Backed by the (customer_id, order_date) index.
	CountOrdersForDay(ctx context.Context, customerID uint, dayStart, dayEnd time.Time) (int64, error)

	// ListOrdersPage returns one page ordered by order date descending.
	ListOrdersPage(ctx context.Context, offset, limit int) ([]entity.Order, error)
	CountOrders(ctx context.Context) (int64, error)

	CustomerExists(ctx context.Context, customerID uint) (bool, error)
}
