package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository covers reads, date updates and deletion of orders.
// Orders are created through AssociationManager.CreateOrder.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (models.Order, error) {
	return findOrder(r.db.WithContext(ctx), id)
}

func (r *OrderRepository) Update(ctx context.Context, id uint, in OrderUpdateInput) (models.Order, error) {
	if err := validateInput(&in); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if order, err = findOrder(tx, id); err != nil {
			return err
		}
		order.OrderDate = in.OrderDate.UTC()
		return tx.Omit(clause.Associations).Save(&order).Error
	})
	if err != nil {
		return models.Order{}, translateWrite(err, "update order", nil, nil)
	}
	return order, nil
}

// Delete removes the order and its order items.
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return translateWrite(err, "delete order", nil, nil)
	}

	utils.InfoLogger.Printf("Order deleted (ID=%d)", id)
	return nil
}

func findOrder(tx *gorm.DB, id uint) (models.Order, error) {
	var order models.Order
	if err := tx.First(&order, id).Error; err != nil {
		return models.Order{}, translateRead(err, "get order", utils.NotFoundf("order %d not found", id))
	}
	return order, nil
}
