package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models"

// inferenceRequest is the HuggingFace text-generation inference payload
type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
}

// HuggingFaceProvider implements the provider interface against the
// HuggingFace inference API. Responses carry no usage accounting.
type HuggingFaceProvider struct {
	cfg    *config.Config
	client *http.Client
	logger logging.Logger

	// BaseURL is overridable for tests
	BaseURL string
}

// NewHuggingFaceProvider creates a new HuggingFace provider instance
func NewHuggingFaceProvider(cfg *config.Config) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.AI.Timeout},
		logger:  logging.GetGlobalLogger(),
		BaseURL: huggingFaceBaseURL,
	}
}

// Name returns the provider id
func (p *HuggingFaceProvider) Name() string {
	return config.ProviderHuggingFace
}

// IsHealthy reports whether the provider has a usable credential
func (p *HuggingFaceProvider) IsHealthy(ctx context.Context) error {
	if config.IsPlaceholderKey(p.cfg.AI.HuggingFaceAPIKey) {
		return &NotConfiguredError{Provider: p.Name(), EnvVar: "HUGGINGFACE_API_KEY"}
	}
	return nil
}

// Generate flattens the conversation and calls the inference endpoint
func (p *HuggingFaceProvider) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	if config.IsPlaceholderKey(p.cfg.AI.HuggingFaceAPIKey) {
		return nil, &NotConfiguredError{Provider: p.Name(), EnvVar: "HUGGINGFACE_API_KEY"}
	}

	prompt := BuildTranscriptPrompt(SystemPromptFor(p.cfg), req.History, req.Message, HuggingFaceHistoryWindow)

	payload := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   p.cfg.AI.MaxTokens,
			Temperature:    p.cfg.AI.Temperature,
			ReturnFullText: false,
		},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + p.cfg.AI.HuggingFaceAPIKey,
	}

	url := fmt.Sprintf("%s/%s", p.BaseURL, p.cfg.AI.HuggingFaceModel)
	body, err := postJSON(ctx, p.client, p.Name(), url, headers, payload)
	if err != nil {
		return nil, err
	}

	var results []inferenceResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &MalformedResponseError{Provider: p.Name(), Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if len(results) == 0 {
		return nil, &MalformedResponseError{Provider: p.Name(), Detail: "empty result array"}
	}

	text := strings.TrimSpace(results[0].GeneratedText)
	if text == "" {
		return nil, &MalformedResponseError{Provider: p.Name(), Detail: "empty generated_text"}
	}

	return &models.GenerationResult{
		Message:  text,
		Provider: p.Name(),
	}, nil
}
