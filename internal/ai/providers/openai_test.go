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

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AI.Provider = config.ProviderOpenAI
	cfg.AI.OpenAIAPIKey = "sk-test-key"
	cfg.AI.OpenAIModel = "gpt-4o-mini"
	cfg.AI.GroqAPIKey = "gsk-test-key"
	cfg.AI.GroqModel = "llama-3.3-70b-versatile"
	cfg.AI.GoogleAPIKey = "test-google-key"
	cfg.AI.GoogleModel = "gemini-1.5-flash"
	cfg.AI.HuggingFaceAPIKey = "hf-test-key"
	cfg.AI.HuggingFaceModel = "mistralai/Mistral-7B-Instruct-v0.3"
	cfg.AI.MaxTokens = config.DefaultMaxTokens
	cfg.AI.Temperature = config.DefaultTemperature
	return cfg
}

func TestChatCompletionsGenerate(t *testing.T) {
	var captured chatCompletionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "Consider a move into data engineering."}}],
			"usage": {"prompt_tokens": 50, "completion_tokens": 20, "total_tokens": 70}
		}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(testConfig())
	provider.BaseURL = server.URL

	history := historyOf(15)
	result, err := provider.Generate(context.Background(), &models.GenerationRequest{
		Message: "What should I do next?",
		History: history,
	})

	require.NoError(t, err)
	assert.Equal(t, "Consider a move into data engineering.", result.Message)
	assert.Equal(t, config.ProviderOpenAI, result.Provider)
	require.NotNil(t, result.Usage)
	assert.Equal(t, 70, result.Usage.Tokens)

	assert.Equal(t, "Bearer sk-test-key", authHeader)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, config.DefaultMaxTokens, captured.MaxTokens)
	// system + 10 windowed history entries + new user message
	assert.Len(t, captured.Messages, 12)
}

func TestChatCompletionsGenerateNotConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a credential")
	}))
	defer server.Close()

	for _, key := range []string{"", "your-openai-api-key", "CHANGEME"} {
		cfg := testConfig()
		cfg.AI.OpenAIAPIKey = key

		provider := NewOpenAIProvider(cfg)
		provider.BaseURL = server.URL

		_, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

		var notConfigured *NotConfiguredError
		require.ErrorAs(t, err, &notConfigured, "key %q", key)
		assert.Equal(t, "OPENAI_API_KEY", notConfigured.EnvVar)
	}
}

func TestChatCompletionsGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limit exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewOpenAIProvider(testConfig())
	provider.BaseURL = server.URL

	_, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "rate limit")
}

func TestChatCompletionsGenerateMalformed(t *testing.T) {
	cases := map[string]string{
		"empty choices": `{"choices": []}`,
		"empty content": `{"choices": [{"message": {"content": "  "}}]}`,
		"not JSON":      `<html>gateway error</html>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			provider := NewOpenAIProvider(testConfig())
			provider.BaseURL = server.URL

			_, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestGroqProviderSharesWireFormat(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "Groq says hi."}}]}`))
	}))
	defer server.Close()

	provider := NewGroqProvider(testConfig())
	provider.BaseURL = server.URL

	result, err := provider.Generate(context.Background(), &models.GenerationRequest{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, config.ProviderGroq, result.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Nil(t, result.Usage)
}

func TestChatCompletionsAnalyzeImage(t *testing.T) {
	var raw map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "A resume on a desk."}}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(testConfig())
	provider.BaseURL = server.URL

	image := &ImageData{Base64: "aGVsbG8=", MimeType: "image/png"}
	analysis, err := provider.AnalyzeImage(context.Background(), image, "Describe this image")

	require.NoError(t, err)
	assert.Equal(t, "A resume on a desk.", analysis)

	messages := raw["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	url := imagePart["image_url"].(map[string]any)["url"].(string)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", url)
}
