package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ecommerce-api/controllers"
)

func TestCatalogItemCRUD(t *testing.T) {
	router := setupRouter(t)

	payload := map[string]interface{}{"name": "Widget", "price": 9.99}
	w, resp := doJSON(t, router, http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item controllers.CatalogItemResponse
	decode(t, resp.Data, &item)
	assert.Equal(t, "Widget", item.Name)
	assert.InDelta(t, 9.99, item.Price, 0.001)

	w, _ = doJSON(t, router, http.MethodPost, "/items", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{"name": "Broken", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{"name": "Priceless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = doJSON(t, router, http.MethodPut, "/items/1", map[string]interface{}{"name": "Widget XL", "price": 12})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, resp.Data, &item)
	assert.Equal(t, "Widget XL", item.Name)

	w, resp = doJSON(t, router, http.MethodGet, "/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var items []controllers.CatalogItemResponse
	decode(t, resp.Data, &items)
	assert.Len(t, items, 1)

	w, _ = doJSON(t, router, http.MethodDelete, "/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/items/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
