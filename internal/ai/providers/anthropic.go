package providers

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
)

// AnthropicProvider implements the provider interface using Anthropic's
// Claude API. The conversation is flattened into a single prompt
// (transcript style) and sent as one user message.
type AnthropicProvider struct {
	client anthropic.Client
	cfg    *config.Config
	logger logging.Logger
}

// NewAnthropicProvider creates a new Anthropic provider instance
func NewAnthropicProvider(cfg *config.Config) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AI.AnthropicAPIKey),
	)

	return &AnthropicProvider{
		client: client,
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Name returns the provider id
func (p *AnthropicProvider) Name() string {
	return config.ProviderAnthropic
}

// IsHealthy reports whether the provider has a usable credential
func (p *AnthropicProvider) IsHealthy(ctx context.Context) error {
	if config.IsPlaceholderKey(p.cfg.AI.AnthropicAPIKey) {
		return &NotConfiguredError{Provider: p.Name(), EnvVar: "ANTHROPIC_API_KEY"}
	}
	return nil
}

// Generate flattens the conversation and calls the Claude messages API
func (p *AnthropicProvider) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	if config.IsPlaceholderKey(p.cfg.AI.AnthropicAPIKey) {
		return nil, &NotConfiguredError{Provider: p.Name(), EnvVar: "ANTHROPIC_API_KEY"}
	}

	startTime := time.Now()
	prompt := BuildTranscriptPrompt(SystemPromptFor(p.cfg), req.History, req.Message, TranscriptHistoryWindow)

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.cfg.AI.AnthropicModel),
		MaxTokens:   int64(p.cfg.AI.MaxTokens),
		Temperature: anthropic.Float(p.cfg.AI.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, err
	}

	if len(response.Content) == 0 {
		return nil, &MalformedResponseError{Provider: p.Name(), Detail: "empty content blocks"}
	}

	var text string
	for _, content := range response.Content {
		textContent := content.AsText()
		text = textContent.Text
		break
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &MalformedResponseError{Provider: p.Name(), Detail: "no text content in response"}
	}

	p.logger.Debug("Claude generation finished", map[string]interface{}{
		"provider":        p.Name(),
		"model":           p.cfg.AI.AnthropicModel,
		"processing_time": time.Since(startTime).String(),
	})

	result := &models.GenerationResult{
		Message:  text,
		Provider: p.Name(),
	}
	if tokens := response.Usage.InputTokens + response.Usage.OutputTokens; tokens > 0 {
		result.Usage = &models.Usage{Tokens: int(tokens)}
	}
	return result, nil
}
