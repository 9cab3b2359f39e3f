package entity

import (
	"time"
)

// Customer is the billing identity that owns orders.
// Email is unique across all customers; the database index is the hard
// guarantee, the service-level check only produces a friendlier error.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Email     string    `json:"email" gorm:"type:varchar(200);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `json:"-" gorm:"foreignKey:CustomerID"`
}
