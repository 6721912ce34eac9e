package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) List(ctx context.Context) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	return items, nil
}

func (r *CatalogRepository) Get(ctx context.Context, id uint) (models.CatalogItem, error) {
	return findCatalogItem(r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) Create(ctx context.Context, in CatalogItemInput) (models.CatalogItem, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return models.CatalogItem{}, err
	}

	item := models.CatalogItem{Name: in.Name, Price: *in.Price}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&item).Error
	})
	if err != nil {
		return models.CatalogItem{}, translateWrite(err, "create catalog item", nameTaken(in.Name), nil)
	}

	utils.InfoLogger.Printf("New catalog item created (ID=%d, name=%s)", item.ID, item.Name)
	return item, nil
}

func (r *CatalogRepository) Update(ctx context.Context, id uint, in CatalogItemInput) (models.CatalogItem, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return models.CatalogItem{}, err
	}

	var item models.CatalogItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if item, err = findCatalogItem(tx, id); err != nil {
			return err
		}
		item.Name = in.Name
		item.Price = *in.Price
		return tx.Save(&item).Error
	})
	if err != nil {
		return models.CatalogItem{}, translateWrite(err, "update catalog item", nameTaken(in.Name), nil)
	}
	return item, nil
}

// Delete removes the item and detaches it from every order that contains it.
func (r *CatalogRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findCatalogItem(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("catalog_item_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return translateWrite(err, "delete catalog item", nil, nil)
	}

	utils.InfoLogger.Printf("Catalog item deleted (ID=%d)", id)
	return nil
}

func findCatalogItem(tx *gorm.DB, id uint) (models.CatalogItem, error) {
	var item models.CatalogItem
	if err := tx.First(&item, id).Error; err != nil {
		return models.CatalogItem{}, translateRead(err, "get catalog item", utils.NotFoundf("catalog item %d not found", id))
	}
	return item, nil
}

func nameTaken(name string) *utils.CustomError {
	return utils.Conflictf("catalog item named %q already exists", name)
}
