package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a short timeout to regular endpoints
// and a longer one to endpoints that block on remote AI providers.
// Streaming endpoints are skipped entirely since they manage their own
// lifetime.
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	aiTimeoutMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: aiTimeout,
	})
	defaultTimeoutMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		aiNext := aiTimeoutMW(next)
		defaultNext := defaultTimeoutMW(next)

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api/v1/chat/stream") {
				return next(c)
			}
			if strings.HasPrefix(path, "/api/v1/chat") || strings.HasPrefix(path, "/api/v1/analyze") {
				return aiNext(c)
			}
			return defaultNext(c)
		}
	}
}
