package ai

import (
	"fmt"

	"disha-utils/internal/ai/advisor"
	"disha-utils/internal/ai/providers"
	"disha-utils/internal/config"
)

// Factory creates AI provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates the provider selected by the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.AI.Provider {
	case config.ProviderOpenAI:
		return providers.NewOpenAIProvider(f.config), nil
	case config.ProviderAnthropic:
		return providers.NewAnthropicProvider(f.config), nil
	case config.ProviderHuggingFace:
		return providers.NewHuggingFaceProvider(f.config), nil
	case config.ProviderGoogle:
		return providers.NewGoogleProvider(f.config), nil
	case config.ProviderGroq:
		return providers.NewGroqProvider(f.config), nil
	case config.ProviderLocal:
		return advisor.New(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", f.config.AI.Provider)
	}
}

// SupportedProviders returns the list of supported provider ids
func (f *Factory) SupportedProviders() []string {
	return []string{
		config.ProviderOpenAI,
		config.ProviderAnthropic,
		config.ProviderHuggingFace,
		config.ProviderGoogle,
		config.ProviderGroq,
		config.ProviderLocal,
	}
}
