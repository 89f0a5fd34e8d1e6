package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
)

// Default endpoints for the two chat-completions style APIs
const (
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"
)

// chatCompletionRequest is the OpenAI-compatible chat-completions payload
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Multimodal content parts for vision-capable chat-completions requests
type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

// ChatCompletionsProvider speaks the OpenAI chat-completions wire format.
// Groq exposes the same contract on a different host, so both remote
// providers share this implementation.
type ChatCompletionsProvider struct {
	name   string
	envVar string
	model  string
	apiKey string
	cfg    *config.Config
	client *http.Client
	logger logging.Logger

	// BaseURL is overridable for tests
	BaseURL string
}

// NewOpenAIProvider creates a provider backed by the OpenAI API
func NewOpenAIProvider(cfg *config.Config) *ChatCompletionsProvider {
	return &ChatCompletionsProvider{
		name:    config.ProviderOpenAI,
		envVar:  "OPENAI_API_KEY",
		model:   cfg.AI.OpenAIModel,
		apiKey:  cfg.AI.OpenAIAPIKey,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.AI.Timeout},
		logger:  logging.GetGlobalLogger(),
		BaseURL: openAIBaseURL,
	}
}

// NewGroqProvider creates a provider backed by the Groq API
func NewGroqProvider(cfg *config.Config) *ChatCompletionsProvider {
	return &ChatCompletionsProvider{
		name:    config.ProviderGroq,
		envVar:  "GROQ_API_KEY",
		model:   cfg.AI.GroqModel,
		apiKey:  cfg.AI.GroqAPIKey,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.AI.Timeout},
		logger:  logging.GetGlobalLogger(),
		BaseURL: groqBaseURL,
	}
}

// Name returns the provider id
func (p *ChatCompletionsProvider) Name() string {
	return p.name
}

// IsHealthy reports whether the provider has a usable credential
func (p *ChatCompletionsProvider) IsHealthy(ctx context.Context) error {
	if config.IsPlaceholderKey(p.apiKey) {
		return &NotConfiguredError{Provider: p.name, EnvVar: p.envVar}
	}
	return nil
}

// Generate formats the conversation into the chat-completions shape,
// performs the call and normalizes the response.
func (p *ChatCompletionsProvider) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	if config.IsPlaceholderKey(p.apiKey) {
		return nil, &NotConfiguredError{Provider: p.name, EnvVar: p.envVar}
	}

	startTime := time.Now()
	messages := BuildChatMessages(SystemPromptFor(p.cfg), req.History, req.Message)

	payload := chatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   p.cfg.AI.MaxTokens,
		Temperature: p.cfg.AI.Temperature,
	}

	body, err := p.post(ctx, payload)
	if err != nil {
		return nil, err
	}

	result, err := p.parseResponse(body)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Chat completion finished", map[string]interface{}{
		"provider":        p.name,
		"model":           p.model,
		"message_count":   len(messages),
		"processing_time": time.Since(startTime).String(),
	})

	return result, nil
}

// AnalyzeImage sends a vision request with the image embedded as a data URL
func (p *ChatCompletionsProvider) AnalyzeImage(ctx context.Context, image *ImageData, prompt string) (string, error) {
	if config.IsPlaceholderKey(p.apiKey) {
		return "", &NotConfiguredError{Provider: p.name, EnvVar: p.envVar}
	}

	payload := chatCompletionRequest{
		Model:       p.model,
		MaxTokens:   p.cfg.AI.MaxTokens,
		Temperature: p.cfg.AI.Temperature,
		Messages: []ChatMessage{{
			Role: RoleUser,
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURLPart{URL: image.DataURL()}},
			},
		}},
	}

	body, err := p.post(ctx, payload)
	if err != nil {
		return "", err
	}

	result, err := p.parseResponse(body)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

func (p *ChatCompletionsProvider) post(ctx context.Context, payload chatCompletionRequest) ([]byte, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + p.apiKey,
	}
	return postJSON(ctx, p.client, p.name, p.BaseURL+"/chat/completions", headers, payload)
}

func (p *ChatCompletionsProvider) parseResponse(body []byte) (*models.GenerationResult, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &MalformedResponseError{Provider: p.name, Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if len(parsed.Choices) == 0 {
		return nil, &MalformedResponseError{Provider: p.name, Detail: "missing choices[0]"}
	}

	message := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if message == "" {
		return nil, &MalformedResponseError{Provider: p.name, Detail: "empty message content"}
	}

	result := &models.GenerationResult{
		Message:  message,
		Provider: p.name,
	}
	if parsed.Usage.TotalTokens > 0 {
		result.Usage = &models.Usage{Tokens: parsed.Usage.TotalTokens}
	}
	return result, nil
}
