package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/api/handlers"
	"github.com/nexusshop/storefront/internal/api/middleware"
	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/metrics"
	"github.com/nexusshop/storefront/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, sessions *service.SessionManager, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.LoggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.SessionMiddleware())
	{
		// Catalog
		v1.GET("/categories", handlers.HandleListCategories(sessions))
		v1.GET("/products", handlers.HandleListProducts())
		v1.GET("/products/:id", handlers.HandleGetProduct(sessions))

		// Cart
		v1.GET("/cart", handlers.HandleGetCart(sessions))
		v1.DELETE("/cart", handlers.HandleClearCart(sessions, logger))
		v1.POST("/cart/items", handlers.HandleAddItem(sessions, logger))
		v1.PATCH("/cart/items/:productId/:size", handlers.HandleUpdateItem(sessions, logger))
		v1.DELETE("/cart/items/:productId/:size", handlers.HandleRemoveItem(sessions, logger))

		// Checkout
		v1.POST("/checkout", handlers.HandleStartCheckout(sessions, logger))
		v1.GET("/checkout", handlers.HandleGetCheckout(sessions, logger))
		v1.POST("/checkout/shipping", handlers.HandleSubmitShipping(sessions, logger))
		v1.POST("/checkout/payment", handlers.HandleSubmitPayment(sessions, logger))
		v1.POST("/checkout/back", handlers.HandleCheckoutBack(sessions, logger))
		v1.GET("/checkout/format", handlers.HandleFormatPaymentInput())

		// Auth
		v1.POST("/auth/login", handlers.HandleLogin(sessions, logger))
		v1.POST("/auth/logout", handlers.HandleLogout(sessions))
		v1.GET("/auth/me", handlers.HandleMe(sessions))

		// Language
		v1.GET("/language", handlers.HandleGetLanguage(sessions))
		v1.PUT("/language", handlers.HandleSetLanguage(sessions, logger))
		v1.GET("/translations/:key", handlers.HandleTranslate(sessions))
	}

	return router
}
