package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/utils"
)

func TestOrderItemScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, customerInput("Ada", "ada@x.com"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, customer.ID)

	item, err := f.catalog.Create(ctx, repository.CatalogItemInput{Name: "Widget", Price: price(9.99)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, item.ID)

	order, err := f.assoc.CreateOrder(ctx, repository.OrderInput{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, order.ID)

	_, err = f.assoc.AttachItem(ctx, order.ID, item.ID)
	require.NoError(t, err)

	items, err := f.assoc.ListItemsForOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)

	_, err = f.assoc.AttachItem(ctx, order.ID, item.ID)
	assert.ErrorIs(t, err, utils.ErrConflict)

	items, err = f.assoc.ListItemsForOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.EqualValues(t, 1, f.count(t, &models.OrderItem{}))
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.assoc.CreateOrder(context.Background(), repository.OrderInput{CustomerID: 42})
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.EqualValues(t, 0, f.count(t, &models.Order{}))

	_, err = f.assoc.CreateOrder(context.Background(), repository.OrderInput{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateOrderDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.mustCustomer(t, "Ada", "ada@x.com")

	before := time.Now().UTC().Add(-time.Second)
	order, err := f.assoc.CreateOrder(ctx, repository.OrderInput{CustomerID: customerID})
	require.NoError(t, err)
	assert.True(t, order.OrderDate.After(before))

	date := time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)
	order, err = f.assoc.CreateOrder(ctx, repository.OrderInput{CustomerID: customerID, OrderDate: &date})
	require.NoError(t, err)

	got, err := f.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, date.Equal(got.OrderDate))
	assert.Equal(t, customerID, got.CustomerID)
}

func TestAttachItemUnknownIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	orderID := f.mustOrder(t, f.mustCustomer(t, "Ada", "ada@x.com"))
	itemID := f.mustItem(t, "Widget", 9.99)

	_, err := f.assoc.AttachItem(ctx, orderID+1, itemID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	_, err = f.assoc.AttachItem(ctx, orderID, itemID+1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.EqualValues(t, 0, f.count(t, &models.OrderItem{}))
}

func TestAttachItemConcurrentSamePair(t *testing.T) {
	f := newFixture(t)
	orderID := f.mustOrder(t, f.mustCustomer(t, "Ada", "ada@x.com"))
	itemID := f.mustItem(t, "Widget", 9.99)

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.assoc.AttachItem(context.Background(), orderID, itemID)
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, utils.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)
	assert.EqualValues(t, 1, f.count(t, &models.OrderItem{}))
}

func TestDetachItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	orderID := f.mustOrder(t, f.mustCustomer(t, "Ada", "ada@x.com"))
	itemID := f.mustItem(t, "Widget", 9.99)

	_, err := f.assoc.AttachItem(ctx, orderID, itemID)
	require.NoError(t, err)

	require.NoError(t, f.assoc.DetachItem(ctx, orderID, itemID))
	assert.ErrorIs(t, f.assoc.DetachItem(ctx, orderID, itemID), utils.ErrNotFound)
	assert.ErrorIs(t, f.assoc.DetachItem(ctx, orderID+1, itemID), utils.ErrNotFound)

	// bisa di-attach lagi setelah detach
	_, err = f.assoc.AttachItem(ctx, orderID, itemID)
	assert.NoError(t, err)
}

func TestListOrdersForCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adaID := f.mustCustomer(t, "Ada", "ada@x.com")
	graceID := f.mustCustomer(t, "Grace", "grace@x.com")
	first := f.mustOrder(t, adaID)
	f.mustOrder(t, graceID)
	second := f.mustOrder(t, adaID)

	orders, err := f.assoc.ListOrdersForCustomer(ctx, adaID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first, orders[0].ID)
	assert.Equal(t, second, orders[1].ID)

	_, err = f.assoc.ListOrdersForCustomer(ctx, graceID+10)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.assoc.ListItemsForOrder(ctx, second+10)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestOrderUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.mustCustomer(t, "Ada", "ada@x.com")
	orderID := f.mustOrder(t, customerID)
	itemID := f.mustItem(t, "Widget", 9.99)
	_, err := f.assoc.AttachItem(ctx, orderID, itemID)
	require.NoError(t, err)

	date := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)
	updated, err := f.orders.Update(ctx, orderID, repository.OrderUpdateInput{OrderDate: &date})
	require.NoError(t, err)
	assert.True(t, date.Equal(updated.OrderDate))
	assert.Equal(t, customerID, updated.CustomerID)

	_, err = f.orders.Update(ctx, orderID, repository.OrderUpdateInput{})
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = f.orders.Update(ctx, orderID+1, repository.OrderUpdateInput{OrderDate: &date})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	require.NoError(t, f.orders.Delete(ctx, orderID))
	assert.EqualValues(t, 0, f.count(t, &models.OrderItem{}))
	assert.ErrorIs(t, f.orders.Delete(ctx, orderID), utils.ErrNotFound)

	// item katalog tetap ada
	_, err = f.catalog.Get(ctx, itemID)
	assert.NoError(t, err)
}
