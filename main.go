package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ordersys/order-backend/config"
	customerrepo "github.com/ordersys/order-backend/customer/repository"
	customersvc "github.com/ordersys/order-backend/customer/service"
	"github.com/ordersys/order-backend/events"
	api "github.com/ordersys/order-backend/handler"
	"github.com/ordersys/order-backend/logger"
	"github.com/ordersys/order-backend/middleware"
	orderpkg "github.com/ordersys/order-backend/order"
	orderrepo "github.com/ordersys/order-backend/order/repository"
	ordersvc "github.com/ordersys/order-backend/order/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	db, err := setupDatabase(cfg.DatabaseDSN)
	if err != nil {
		zap.L().Fatal("error while setting up database", zap.Error(err))
	}

	// event publishing is optional; without RABBIT_URL orders flow without it
	var publisher orderpkg.EventPublisher
	if cfg.RabbitURL != "" {
		conn, err := amqp091.Dial(cfg.RabbitURL)
		if err != nil {
			zap.L().Fatal("error while connecting to RabbitMQ", zap.Error(err))
		}
		pub, err := events.NewPublisher(conn)
		if err != nil {
			zap.L().Fatal("error while setting up event publisher", zap.Error(err))
		}
		publisher = pub
	}

	// setup customer repository + service
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService)

	// setup order repository + service
	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, publisher)
	orderHandler := api.NewOrderHandler(orderService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/customers", customerHandler.ListCustomers())
		v1.POST("/customers", customerHandler.RegisterCustomer())

		v1.POST("/orders", orderHandler.CreateOrder())
		v1.GET("/orders", orderHandler.GetOrders())
		v1.GET("/orders/:id", orderHandler.GetOrderByID())
		v1.PATCH("/orders/:id/status", orderHandler.UpdateStatus())
	}

	zap.L().Info("starting order backend", zap.String("address", cfg.RunAddress))
	if err := r.Run(cfg.RunAddress); err != nil {
		zap.L().Fatal("error while starting server", zap.Error(err))
	}
}
