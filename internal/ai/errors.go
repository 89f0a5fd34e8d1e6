package ai

import (
	"context"
	"errors"

	"disha-utils/internal/ai/providers"
)

// Fallback reasons recorded in logs and metrics when a remote provider
// call is answered by the local advisor instead.
const (
	ReasonNotConfigured = "not_configured"
	ReasonHTTPError     = "http_error"
	ReasonMalformed     = "malformed_response"
	ReasonCanceled      = "canceled"
	ReasonRequestFailed = "request_failed"
)

// fallbackReason maps a provider error to its fallback reason
func fallbackReason(err error) string {
	var notConfigured *providers.NotConfiguredError
	var statusErr *providers.StatusError
	var malformed *providers.MalformedResponseError

	switch {
	case errors.As(err, &notConfigured):
		return ReasonNotConfigured
	case errors.As(err, &statusErr):
		return ReasonHTTPError
	case errors.As(err, &malformed):
		return ReasonMalformed
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	default:
		return ReasonRequestFailed
	}
}
