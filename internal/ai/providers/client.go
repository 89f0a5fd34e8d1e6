package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"disha-utils/pkg/utils"
)

// maxErrorBodyBytes caps how much of an error response body is kept for
// diagnostics.
const maxErrorBodyBytes = 512

// postJSON issues a JSON POST and returns the raw response body. Non-2xx
// statuses become a StatusError carrying a body snippet for operators.
func postJSON(ctx context.Context, client *http.Client, providerName, url string, headers map[string]string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", providerName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", providerName, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", providerName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", providerName, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       utils.TruncateString(string(body), maxErrorBodyBytes),
		}
	}

	return body, nil
}
