package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"disha-utils/pkg/models"
	"disha-utils/pkg/utils"
)

// Request bodies can carry base64-encoded images, so the cap is well
// above a typical JSON payload.
const maxRequestBodyBytes = 6 * 1024 * 1024

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for POST requests
			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxRequestBodyBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
