package customer

import (
	"context"
	"errors"

	"github.com/ordersys/order-backend/entity"
)

// ErrDuplicateEmail is returned by StoreCustomer when the email unique
// constraint rejects the insert (a concurrent registration won the race).
var ErrDuplicateEmail = errors.New("customer email already exists")

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// ListCustomers returns all customers, most recently created first.
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
