package models

import (
	"time"
)

// Order belongs to exactly one customer. CustomerID never changes after
// creation; deleting the customer deletes the order.
type Order struct {
	ID         uint      `gorm:"primaryKey"`
	OrderDate  time.Time `gorm:"not null"`
	CustomerID uint      `gorm:"not null;index"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
