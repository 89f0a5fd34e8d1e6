package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	flag "github.com/spf13/pflag"

	"disha-utils/internal/ai"
	"disha-utils/internal/api/routes"
	"disha-utils/internal/config"
	"disha-utils/internal/history"
	"disha-utils/internal/logging"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Disha AI Advisor", map[string]interface{}{
		"provider": cfg.AI.Provider,
	})

	// Initialize AI manager
	aiManager := ai.NewManager(cfg)
	if err := aiManager.Start(); err != nil {
		logger.Error("Failed to start AI manager", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize conversation history store
	store := history.NewStore(cfg)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, aiManager, store)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping AI manager...")
		if err := aiManager.Stop(); err != nil {
			logger.Error("Error stopping AI manager", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Closing history store...")
		if err := store.Close(); err != nil {
			logger.Error("Error closing history store", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
