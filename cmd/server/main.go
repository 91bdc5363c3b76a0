package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"quickride/internal/app"
	"quickride/internal/booking"
	"quickride/internal/clock"
	"quickride/internal/config"
	"quickride/internal/handler"
	"quickride/internal/repository/memory"
	"quickride/internal/service"
	"quickride/internal/ws"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis with New Relic instrumentation. Redis is optional
	// and only backs the idempotency middleware.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Wire dependencies.
	server, rideService := wireServer(redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the active ride simulation before closing the server so no
	// status timer fires mid-shutdown.
	rideService.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server along with
// the ride service for shutdown.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *service.RideService) {
	// Initialize in-memory stores.
	rideStore := memory.NewRideStore(cfg.Store.Latency)
	methodStore := memory.NewPaymentMethodStore(cfg.Store.Latency)
	transactionStore := memory.NewTransactionStore(cfg.Store.Latency)

	// Initialize services.
	hub := ws.NewHub()
	notificationService := service.NewNotificationService()
	paymentService := service.NewPaymentService(methodStore, transactionStore)
	rideService := service.NewRideService(
		booking.NewCoordinator(),
		clock.Wall{},
		rideStore,
		paymentService,
		notificationService,
		hub,
	)

	// Initialize handlers.
	rideHandler := handler.NewRideHandler(rideService, rideStore)
	catalogHandler := handler.NewCatalogHandler()
	paymentHandler := handler.NewPaymentHandler(paymentService)
	streamHandler := handler.NewStreamHandler(hub, rideService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		RideHandler:    rideHandler,
		CatalogHandler: catalogHandler,
		PaymentHandler: paymentHandler,
		StreamHandler:  streamHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return server, rideService
}
