package main

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ordersys/order-backend/entity"
)

func setupDatabase(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}
