package ai

import (
	"context"

	"disha-utils/internal/ai/providers"
	"disha-utils/pkg/models"
)

// Provider defines the interface for AI providers. One provider is
// selected at construction and stays active for the engine's lifetime.
type Provider interface {
	// Generate produces a response for the request, formatting the
	// conversation into the provider's wire shape and normalizing the
	// result
	Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error)

	// IsHealthy checks if the provider is usable (credential configured)
	IsHealthy(ctx context.Context) error

	// Name returns the provider id
	Name() string
}

// VisionAnalyzer is implemented by providers that can describe images
type VisionAnalyzer interface {
	AnalyzeImage(ctx context.Context, image *providers.ImageData, prompt string) (string, error)
}
