package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha-utils/internal/config"
	"disha-utils/pkg/models"
)

func TestHuggingFaceGenerate(t *testing.T) {
	var captured inferenceRequest
	var path, authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`[{"generated_text": " Focus on one skill at a time."}]`))
	}))
	defer server.Close()

	provider := NewHuggingFaceProvider(testConfig())
	provider.BaseURL = server.URL

	result, err := provider.Generate(context.Background(), &models.GenerationRequest{
		Message: "How do I upskill?",
		History: historyOf(6),
	})

	require.NoError(t, err)
	assert.Equal(t, "Focus on one skill at a time.", result.Message)
	assert.Equal(t, config.ProviderHuggingFace, result.Provider)
	assert.Nil(t, result.Usage)

	assert.Equal(t, "/mistralai/Mistral-7B-Instruct-v0.3", path)
	assert.Equal(t, "Bearer hf-test-key", authHeader)

	// Only the trailing 3 history entries survive the shorter window
	assert.NotContains(t, captured.Inputs, "message 2")
	assert.Contains(t, captured.Inputs, "message 3")
	assert.False(t, captured.Parameters.ReturnFullText)
	assert.Equal(t, config.DefaultMaxTokens, captured.Parameters.MaxNewTokens)
}

func TestHuggingFaceGenerateNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AI.HuggingFaceAPIKey = ""

	provider := NewHuggingFaceProvider(cfg)

	_, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

	var notConfigured *NotConfiguredError
	require.ErrorAs(t, err, &notConfigured)
	assert.Equal(t, "HUGGINGFACE_API_KEY", notConfigured.EnvVar)
}

func TestHuggingFaceGenerateMalformed(t *testing.T) {
	cases := map[string]string{
		"empty array": `[]`,
		"empty text":  `[{"generated_text": "   "}]`,
		"object body": `{"error": "model loading"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			provider := NewHuggingFaceProvider(testConfig())
			provider.BaseURL = server.URL

			_, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
		})
	}
}
