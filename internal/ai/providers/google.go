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

const googleBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// generateContentRequest is the Gemini generateContent payload
type generateContentRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GoogleProvider implements the provider interface against the Gemini
// generateContent API. Responses carry no usage accounting.
type GoogleProvider struct {
	cfg    *config.Config
	client *http.Client
	logger logging.Logger

	// BaseURL is overridable for tests
	BaseURL string
}

// NewGoogleProvider creates a new Gemini provider instance
func NewGoogleProvider(cfg *config.Config) *GoogleProvider {
	return &GoogleProvider{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.AI.Timeout},
		logger:  logging.GetGlobalLogger(),
		BaseURL: googleBaseURL,
	}
}

// Name returns the provider id
func (p *GoogleProvider) Name() string {
	return config.ProviderGoogle
}

// IsHealthy reports whether the provider has a usable credential
func (p *GoogleProvider) IsHealthy(ctx context.Context) error {
	if config.IsPlaceholderKey(p.cfg.AI.GoogleAPIKey) {
		return &NotConfiguredError{Provider: p.Name(), EnvVar: "GOOGLE_AI_API_KEY"}
	}
	return nil
}

// Generate flattens the conversation and calls generateContent
func (p *GoogleProvider) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	prompt := BuildTranscriptPrompt(SystemPromptFor(p.cfg), req.History, req.Message, TranscriptHistoryWindow)

	text, err := p.generateContent(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, err
	}

	return &models.GenerationResult{
		Message:  text,
		Provider: p.Name(),
	}, nil
}

// AnalyzeImage sends the image inline alongside the analysis prompt
func (p *GoogleProvider) AnalyzeImage(ctx context.Context, image *ImageData, prompt string) (string, error) {
	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{MimeType: image.MimeType, Data: image.Base64}},
	}
	return p.generateContent(ctx, parts)
}

func (p *GoogleProvider) generateContent(ctx context.Context, parts []geminiPart) (string, error) {
	if config.IsPlaceholderKey(p.cfg.AI.GoogleAPIKey) {
		return "", &NotConfiguredError{Provider: p.Name(), EnvVar: "GOOGLE_AI_API_KEY"}
	}

	payload := generateContentRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: p.cfg.AI.MaxTokens,
			Temperature:     p.cfg.AI.Temperature,
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.BaseURL, p.cfg.AI.GoogleModel, p.cfg.AI.GoogleAPIKey)
	body, err := postJSON(ctx, p.client, p.Name(), url, nil, payload)
	if err != nil {
		return "", err
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &MalformedResponseError{Provider: p.Name(), Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedResponseError{Provider: p.Name(), Detail: "missing candidates[0].content.parts[0]"}
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", &MalformedResponseError{Provider: p.Name(), Detail: "empty candidate text"}
	}
	return text, nil
}
