package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id uint) (models.Customer, error) {
	return findCustomer(r.db.WithContext(ctx), id)
}

// Create inserts a customer. A duplicate email is a Conflict and nothing is written.
func (r *CustomerRepository) Create(ctx context.Context, in CustomerInput) (models.Customer, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return models.Customer{}, err
	}

	customer := models.Customer{}
	applyCustomerInput(&customer, in)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&customer).Error
	})
	if err != nil {
		return models.Customer{}, translateWrite(err, "create customer", emailTaken(in.Email), nil)
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	return customer, nil
}

// Update replaces every mutable field of the customer in one transaction.
func (r *CustomerRepository) Update(ctx context.Context, id uint, in CustomerInput) (models.Customer, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return models.Customer{}, err
	}

	var customer models.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if customer, err = findCustomer(tx, id); err != nil {
			return err
		}
		applyCustomerInput(&customer, in)
		return tx.Save(&customer).Error
	})
	if err != nil {
		return models.Customer{}, translateWrite(err, "update customer", emailTaken(in.Email), nil)
	}
	return customer, nil
}

// Delete removes the customer together with its orders and their order items.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := findCustomer(tx, id)
		if err != nil {
			return err
		}

		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		return translateWrite(err, "delete customer", nil, nil)
	}

	utils.InfoLogger.Printf("Customer deleted (ID=%d)", id)
	return nil
}

func findCustomer(tx *gorm.DB, id uint) (models.Customer, error) {
	var customer models.Customer
	if err := tx.First(&customer, id).Error; err != nil {
		return models.Customer{}, translateRead(err, "get customer", utils.NotFoundf("customer %d not found", id))
	}
	return customer, nil
}

func applyCustomerInput(customer *models.Customer, in CustomerInput) {
	customer.Name = in.Name
	customer.StreetAddress = in.StreetAddress
	customer.City = in.City
	customer.State = in.State
	customer.ZipCode = in.ZipCode
	customer.Email = in.Email
}

func emailTaken(email string) *utils.CustomError {
	return utils.Conflictf("customer with email %q already exists", email)
}
