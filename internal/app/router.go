package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"quickride/internal/handler"
	"quickride/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler    *handler.RideHandler
	CatalogHandler *handler.CatalogHandler
	PaymentHandler *handler.PaymentHandler
	StreamHandler  *handler.StreamHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Booking replay protection needs Redis; skip when not configured.
	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check and metrics.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.BookRide)
			rides.GET("", deps.RideHandler.GetAll)
			rides.GET("/active", deps.RideHandler.GetActive)
			rides.POST("/active/cancel", deps.RideHandler.CancelActive)
			rides.GET("/active/ws", deps.StreamHandler.Stream)
			rides.GET("/:id", deps.RideHandler.GetRide)
		}

		// Catalog routes.
		v1.GET("/vehicles", deps.CatalogHandler.GetVehicles)
		v1.GET("/locations", deps.CatalogHandler.SearchLocations)

		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.GET("/methods", deps.PaymentHandler.GetMethods)
			payments.POST("/methods", deps.PaymentHandler.AddMethod)
			payments.DELETE("/methods/:id", deps.PaymentHandler.RemoveMethod)
			payments.POST("/methods/:id/default", deps.PaymentHandler.SetDefaultMethod)
			payments.GET("/transactions", deps.PaymentHandler.GetTransactions)
		}
	}

	return router
}
