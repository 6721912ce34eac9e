package models

import (
	"time"
)

// OrderItem links an order to a catalog item. The composite primary key
// guarantees at most one row per (order, item) pair.
type OrderItem struct {
	OrderID       uint        `gorm:"primaryKey;autoIncrement:false"`
	Order         Order       `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CatalogItemID uint        `gorm:"primaryKey;autoIncrement:false;index"`
	CatalogItem   CatalogItem `gorm:"foreignKey:CatalogItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt     time.Time   `gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_item" }
