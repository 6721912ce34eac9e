package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssociationManager owns the customer → order and order ↔ catalog item links.
// Pair uniqueness is enforced by the order_item primary key; the key
// violation is the Conflict signal, there is no existence pre-check.
type AssociationManager struct {
	db *gorm.DB
}

func NewAssociationManager(db *gorm.DB) *AssociationManager {
	return &AssociationManager{db: db}
}

// CreateOrder creates an order for an existing customer.
func (m *AssociationManager) CreateOrder(ctx context.Context, in OrderInput) (models.Order, error) {
	if err := validateInput(&in); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		CustomerID: in.CustomerID,
		OrderDate:  time.Now().UTC(),
	}
	if in.OrderDate != nil {
		order.OrderDate = in.OrderDate.UTC()
	}

	missing := utils.NotFoundf("customer %d not found", in.CustomerID)
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCustomer(tx, in.CustomerID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&order).Error
	})
	if err != nil {
		return models.Order{}, translateWrite(err, "create order", nil, missing)
	}

	utils.InfoLogger.Printf("New order created (ID=%d) for CustomerID=%d", order.ID, order.CustomerID)
	return order, nil
}

// AttachItem adds a catalog item to an order. Attaching the same pair twice
// returns a Conflict and leaves exactly one row.
func (m *AssociationManager) AttachItem(ctx context.Context, orderID, itemID uint) (models.OrderItem, error) {
	link := models.OrderItem{
		OrderID:       orderID,
		CatalogItemID: itemID,
		CreatedAt:     time.Now().UTC(),
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOrder(tx, orderID); err != nil {
			return err
		}
		if _, err := findCatalogItem(tx, itemID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&link).Error
	})
	if err != nil {
		return models.OrderItem{}, translateWrite(err, "attach item",
			utils.Conflictf("catalog item %d is already attached to order %d", itemID, orderID),
			utils.NotFoundf("order %d or catalog item %d not found", orderID, itemID))
	}

	utils.InfoLogger.Printf("Catalog item %d attached to order %d", itemID, orderID)
	return link, nil
}

// DetachItem removes a catalog item from an order. Detaching a pair that is
// not attached is NotFound.
func (m *AssociationManager) DetachItem(ctx context.Context, orderID, itemID uint) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOrder(tx, orderID); err != nil {
			return err
		}
		if _, err := findCatalogItem(tx, itemID); err != nil {
			return err
		}
		res := tx.Where("order_id = ? AND catalog_item_id = ?", orderID, itemID).Delete(&models.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFoundf("catalog item %d is not attached to order %d", itemID, orderID)
		}
		return nil
	})
	if err != nil {
		return translateWrite(err, "detach item", nil, nil)
	}

	utils.InfoLogger.Printf("Catalog item %d detached from order %d", itemID, orderID)
	return nil
}

func (m *AssociationManager) ListItemsForOrder(ctx context.Context, orderID uint) ([]models.CatalogItem, error) {
	db := m.db.WithContext(ctx)
	if _, err := findOrder(db, orderID); err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0)
	err := db.Joins("JOIN order_item ON order_item.catalog_item_id = catalog_items.id").
		Where("order_item.order_id = ?", orderID).
		Order("catalog_items.id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list items for order %d: %w", orderID, err)
	}
	return items, nil
}

func (m *AssociationManager) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	db := m.db.WithContext(ctx)
	if _, err := findCustomer(db, customerID); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0)
	if err := db.Where("customer_id = ?", customerID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}
