// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/interfaces/http/handlers"
	"github.com/alcho-id/alcho-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	setupStorefrontRoutes(rg, redisClient, cfg)
	setupAnalyticsRoutes(rg, db, cfg)
	setupAuthRoutes(rg, db, redisClient, cfg)
	setupAdminRoutes(rg, db, redisClient, cfg)
}

// setupStorefrontRoutes covers the public catalog and session cart. None
// of these require authentication.
func setupStorefrontRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(cfg)
	cartHandler := handlers.NewCartHandler(redisClient, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/pricelist", catalogHandler.DownloadPricelist)
		products.GET("/:code", catalogHandler.GetProduct)
	}

	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/whatsapp", catalogHandler.GetInquiryLink)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:code", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:code", cartHandler.RemoveFromCart)
		cart.GET("/checkout-link", cartHandler.GetCheckoutLink)
	}
}

// setupAnalyticsRoutes covers storefront event capture
func setupAnalyticsRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg)

	analytics := rg.Group("/analytics")
	{
		analytics.POST("/page-views", analyticsHandler.TrackPageView)
		analytics.POST("/interests", analyticsHandler.TrackInterest)
		analytics.POST("/searches", analyticsHandler.TrackSearch)
	}
}

// setupAuthRoutes covers admin sign-in and session management
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/verify-device", authHandler.VerifyDevice)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/password", authHandler.ChangePassword)
			protected.GET("/devices", authHandler.GetTrustedDevices)
			protected.DELETE("/devices/:deviceId", authHandler.RevokeTrustedDevice)
		}
	}
}

// setupAdminRoutes covers the protected back-office API
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)
	cashflowHandler := handlers.NewCashflowHandler(db, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		products := admin.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", orderHandler.GetCustomers)
			customers.POST("", orderHandler.CreateCustomer)
			customers.GET("/:id", orderHandler.GetCustomer)
		}

		admin.GET("/cashflow/summary", cashflowHandler.GetSummary)
		admin.GET("/analytics/insights", analyticsHandler.GetInsights)

		admin.POST("/users", authHandler.CreateUser)
	}
}
