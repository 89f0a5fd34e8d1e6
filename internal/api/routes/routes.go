package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"disha-utils/internal/ai"
	"disha-utils/internal/api/handlers"
	"disha-utils/internal/api/middleware"
	"disha-utils/internal/config"
	"disha-utils/internal/history"
	"disha-utils/pkg/models"
	"disha-utils/pkg/utils"
)

// errorHandler renders uncaught errors in the standard error envelope
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var customErr *utils.CustomError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &customErr):
		status = customErr.Code
		message = customErr.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	requestID, _ := c.Get("request_id").(string)
	_ = c.JSON(status, models.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, aiManager *ai.Manager, store history.Store) {
	e.HTTPErrorHandler = errorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Short timeout for most endpoints, longer for endpoints that wait
	// on a remote AI provider
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.AI.Timeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(aiManager, store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(aiManager))

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		chat := v1.Group("/chat")
		{
			chat.POST("", handlers.ChatHandler(cfg, aiManager, store))
			chat.POST("/stream", handlers.ChatStreamHandler(cfg, aiManager, store))
			chat.POST("/attachments", handlers.ChatAttachmentsHandler(cfg, aiManager, store))
		}

		analyze := v1.Group("/analyze")
		{
			analyze.POST("/image", handlers.AnalyzeImageHandler(aiManager))
			analyze.POST("/document", handlers.AnalyzeDocumentHandler(aiManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Disha AI Advisor",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
