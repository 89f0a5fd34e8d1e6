package providers

import "fmt"

// NotConfiguredError indicates the selected provider has no usable
// credential. Detected at call time, never at construction.
type NotConfiguredError struct {
	Provider string
	EnvVar   string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s API key not configured - set %s", e.Provider, e.EnvVar)
}

// StatusError indicates a non-success HTTP status from a provider API
type StatusError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s API returned %s: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s API returned %s", e.Provider, e.Status)
}

// MalformedResponseError indicates the provider answered with an
// unexpected response shape
type MalformedResponseError struct {
	Provider string
	Detail   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Provider, e.Detail)
}
