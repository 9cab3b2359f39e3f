// Package events publishes order lifecycle messages to a fanout exchange so
// downstream services (fulfilment, notifications) can react. Publishing is
// best-effort: failures are logged and never surfaced to callers.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ordersys/order-backend/entity"
)

const (
	exchangeName   = "order_events"
	publishTimeout = 5 * time.Second
)

// Publisher emits order events over an AMQP channel.
type Publisher struct {
	ch *amqp091.Channel
}

// NewPublisher opens a channel on the connection and declares the durable
// fanout exchange.
func NewPublisher(conn *amqp091.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchangeName,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{ch: ch}, nil
}

type orderCreatedMessage struct {
	Event       string          `json:"event"`
	OrderID     uint            `json:"order_id"`
	CustomerID  uint            `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

type orderStatusChangedMessage struct {
	Event   string `json:"event"`
	OrderID uint   `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// OrderCreated announces a freshly committed order.
func (p *Publisher) OrderCreated(o *entity.Order) {
	p.publish(orderCreatedMessage{
		Event:       "order_created",
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
	})
}

// OrderStatusChanged announces a committed status transition.
func (p *Publisher) OrderStatusChanged(orderID uint, from, to entity.OrderStatus) {
	p.publish(orderStatusChangedMessage{
		Event:   "order_status_changed",
		OrderID: orderID,
		From:    string(from),
		To:      string(to),
	})
}

func (p *Publisher) publish(msg any) {
	body, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("error while marshalling order event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		exchangeName,
		"", // fanout ignores routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		zap.L().Error("error while publishing order event", zap.Error(err))
	}
}
