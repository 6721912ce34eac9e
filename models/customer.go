package models

import (
	"time"
)

// Customer owns zero or more orders. Email is unique across all customers.
type Customer struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(50);not null"`
	StreetAddress string    `gorm:"type:varchar(50);not null"`
	City          string    `gorm:"type:varchar(20);not null"`
	State         string    `gorm:"type:varchar(2);not null"`
	ZipCode       string    `gorm:"type:varchar(5);not null"`
	Email         string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_customers_email"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}
