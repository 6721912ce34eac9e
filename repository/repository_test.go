package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/testutil"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	customers *repository.CustomerRepository
	catalog   *repository.CatalogRepository
	orders    *repository.OrderRepository
	assoc     *repository.AssociationManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &fixture{
		db:        db,
		customers: repository.NewCustomerRepository(db),
		catalog:   repository.NewCatalogRepository(db),
		orders:    repository.NewOrderRepository(db),
		assoc:     repository.NewAssociationManager(db),
	}
}

func customerInput(name, email string) repository.CustomerInput {
	return repository.CustomerInput{
		Name:          name,
		StreetAddress: "12 Analytical Way",
		City:          "London",
		State:         "LN",
		ZipCode:       "12345",
		Email:         email,
	}
}

func price(v float64) *float64 { return &v }

func (f *fixture) mustCustomer(t *testing.T, name, email string) uint {
	t.Helper()
	c, err := f.customers.Create(context.Background(), customerInput(name, email))
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) mustItem(t *testing.T, name string, p float64) uint {
	t.Helper()
	item, err := f.catalog.Create(context.Background(), repository.CatalogItemInput{Name: name, Price: price(p)})
	require.NoError(t, err)
	return item.ID
}

func (f *fixture) mustOrder(t *testing.T, customerID uint) uint {
	t.Helper()
	order, err := f.assoc.CreateOrder(context.Background(), repository.OrderInput{CustomerID: customerID})
	require.NoError(t, err)
	return order.ID
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}
