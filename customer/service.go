package customer

import (
	"context"

	"github.com/ordersys/order-backend/entity"
)

// RegisterCustomerRequest carries the data required to register a customer.
type RegisterCustomerRequest struct {
	Name  string
	Email string
}

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
}
