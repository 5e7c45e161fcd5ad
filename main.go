package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joltcab/joltcab-api/config"
	"github.com/joltcab/joltcab-api/payments"
	"github.com/joltcab/joltcab-api/routes"
	"github.com/joltcab/joltcab-api/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()
	defer config.CloseDB()

	// Initialize Redis for driver location tracking. The API stays up
	// without it; location updates fail until Redis is reachable.
	if err := config.InitRedis(); err != nil {
		utils.LogError("Redis unavailable, driver location tracking disabled: %v", err)
	} else {
		defer config.CloseRedis()
	}

	// Initialize the payment gateway
	payments.InitStripe(cfg.StripeSecretKey)

	// Set up router
	router := routes.SetupRouter()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	<-ctx.Done()

	// Drain in-flight requests before tearing down connections
	utils.LogInfo("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Server shutdown failed: %v", err)
	}
}
