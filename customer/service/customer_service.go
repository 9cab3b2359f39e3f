package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ordersys/order-backend/apperr"
	customerpkg "github.com/ordersys/order-backend/customer"
	"github.com/ordersys/order-backend/entity"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

// RegisterCustomer stores a new customer after trimming the email and
// checking it is not taken. The unique index remains the hard guarantee;
// a constraint violation on insert maps to the same business-rule outcome
// as the pre-check.
func (s *customerService) RegisterCustomer(ctx context.Context, req customerpkg.RegisterCustomerRequest) (*entity.Customer, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.BusinessRule("email already registered")
	}

	c := &entity.Customer{
		Name:  req.Name,
		Email: email,
	}
	created, err := s.repo.StoreCustomer(ctx, c)
	if err != nil {
		if errors.Is(err, customerpkg.ErrDuplicateEmail) {
			return nil, apperr.BusinessRule("email already registered")
		}
		return nil, err
	}
	return created, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.ListCustomers(ctx)
}
