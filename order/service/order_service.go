package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ordersys/order-backend/apperr"
	"github.com/ordersys/order-backend/entity"
	orderpkg "github.com/ordersys/order-backend/order"
)

// maxOrdersPerDay caps orders per customer per UTC calendar day. The
// count-then-insert is not serialized, so the cap is a soft rule under
// concurrent creators.
const maxOrdersPerDay = 5

type orderService struct {
	repo   orderpkg.Repository
	events orderpkg.EventPublisher
}

// NewOrderService constructs the order lifecycle service. events may be nil
// to disable publishing.
func NewOrderService(repo orderpkg.Repository, events orderpkg.EventPublisher) orderpkg.Service {
	return &orderService{repo: repo, events: events}
}

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.BusinessRule("order must contain at least one item")
	}

	exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("customer not found")
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = req.OrderDate.UTC()
	}

	dayStart := time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	count, err := s.repo.CountOrdersForDay(ctx, req.CustomerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if count >= maxOrdersPerDay {
		return nil, apperr.BusinessRule("daily order limit (5) exceeded")
	}

	o := &entity.Order{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Status:     entity.OrderPending,
	}

	total := decimal.Zero
	for _, it := range req.Items {
		item := entity.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
		total = total.Add(item.LineTotal())
		o.Items = append(o.Items, item)
	}
	o.TotalAmount = total

	created, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.OrderCreated(created)
	}
	return created, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uint, newStatus entity.OrderStatus) error {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderpkg.ErrOrderNotFound) {
			return apperr.NotFound("order not found")
		}
		return err
	}

	if err := entity.ValidateTransition(o.Status, newStatus); err != nil {
		return err
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		return err
	}

	if s.events != nil {
		s.events.OrderStatusChanged(orderID, o.Status, newStatus)
	}
	return nil
}

func (s *orderService) GetOrdersPage(ctx context.Context, page, pageSize int) (*orderpkg.OrdersPage, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	totalCount, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListOrdersPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &orderpkg.OrdersPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderpkg.ErrOrderNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}
