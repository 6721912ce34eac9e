package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/controllers"
	"github.com/yeremiapane/ecommerce-api/middlewares"
	"github.com/yeremiapane/ecommerce-api/repository"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB, err := db.DB(); err == nil {
		registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.DBDriver))
	}
	metrics := middlewares.NewMetrics(registry)

	// Apply middlewares
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(metrics.Middleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowOrigin))
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}

	// Inisialisasi repository dan controller
	customers := repository.NewCustomerRepository(db)
	catalog := repository.NewCatalogRepository(db)
	orders := repository.NewOrderRepository(db)
	assoc := repository.NewAssociationManager(db)

	customerCtrl := controllers.NewCustomerController(customers, assoc)
	catalogCtrl := controllers.NewCatalogController(catalog)
	orderCtrl := controllers.NewOrderController(orders, assoc)

	// ----------------------------------------------------------------
	//                      SERVICE ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the E-Commerce API")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/health", healthHandler(db))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// CUSTOMERS
	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	r.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	r.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	r.GET("/customers/:customer_id/orders", customerCtrl.GetCustomerOrders)

	// CATALOG ITEMS
	r.GET("/items", catalogCtrl.GetAllItems)
	r.POST("/items", catalogCtrl.CreateItem)
	r.GET("/items/:item_id", catalogCtrl.GetItemByID)
	r.PUT("/items/:item_id", catalogCtrl.UpdateItem)
	r.DELETE("/items/:item_id", catalogCtrl.DeleteItem)

	// ORDERS
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	r.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
	r.POST("/orders/:order_id/items/:item_id", orderCtrl.AttachItem)
	r.DELETE("/orders/:order_id/items/:item_id", orderCtrl.DetachItem)

	return r
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			utils.ErrorLogger.Errorf("health check failed: %v", err)
			utils.RespondJSON(c, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "ok", nil)
	}
}
