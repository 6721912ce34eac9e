package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/ecommerce-api/controllers"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/testutil"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)

	customers := repository.NewCustomerRepository(db)
	catalog := repository.NewCatalogRepository(db)
	orders := repository.NewOrderRepository(db)
	assoc := repository.NewAssociationManager(db)

	customerCtrl := controllers.NewCustomerController(customers, assoc)
	catalogCtrl := controllers.NewCatalogController(catalog)
	orderCtrl := controllers.NewOrderController(orders, assoc)

	router := gin.New()
	router.GET("/customers", customerCtrl.GetAllCustomers)
	router.POST("/customers", customerCtrl.CreateCustomer)
	router.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	router.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	router.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	router.GET("/customers/:customer_id/orders", customerCtrl.GetCustomerOrders)

	router.GET("/items", catalogCtrl.GetAllItems)
	router.POST("/items", catalogCtrl.CreateItem)
	router.GET("/items/:item_id", catalogCtrl.GetItemByID)
	router.PUT("/items/:item_id", catalogCtrl.UpdateItem)
	router.DELETE("/items/:item_id", catalogCtrl.DeleteItem)

	router.GET("/orders", orderCtrl.GetAllOrders)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	router.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	router.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
	router.POST("/orders/:order_id/items/:item_id", orderCtrl.AttachItem)
	router.DELETE("/orders/:order_id/items/:item_id", orderCtrl.DetachItem)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, url string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body *bytes.Buffer
	switch p := payload.(type) {
	case nil:
		body = bytes.NewBuffer(nil)
	case string:
		body = bytes.NewBufferString(p)
	default:
		b, err := json.Marshal(p)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func adaPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Ada",
		"street_address": "12 Analytical Way",
		"city":           "London",
		"state":          "LN",
		"zip_code":       "12345",
		"email":          "ada@x.com",
	}
}
