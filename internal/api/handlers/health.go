package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"disha-utils/internal/ai"
	"disha-utils/internal/history"
	"disha-utils/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports whether the engine and its collaborators are
// ready. An unconfigured remote provider still counts as ready because
// the local advisor covers it.
func ReadinessHandler(aiManager *ai.Manager, store history.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api": "ok",
		}

		ctx := c.Request().Context()

		if err := aiManager.CheckHealth(ctx); err != nil {
			checks["ai_provider"] = "degraded: " + err.Error()
		} else {
			checks["ai_provider"] = "ok"
		}

		if err := store.Ping(ctx); err != nil {
			checks["history"] = "degraded: " + err.Error()
		} else {
			checks["history"] = "ok"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status including the active
// provider id
func StatusHandler(aiManager *ai.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":         "operational",
				"ai_provider": aiManager.ProviderName(),
			},
		})
	}
}
