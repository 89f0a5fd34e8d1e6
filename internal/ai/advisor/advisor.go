// Package advisor implements the local rule-based career advisor. It is
// both the "local" provider and the universal fallback when a remote
// provider fails, so it must never error and never perform I/O.
package advisor

import (
	"context"

	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
)

// Advisor generates deterministic career-advice responses from static
// knowledge tables.
type Advisor struct {
	cfg    *config.Config
	logger logging.Logger
}

// New creates a new local advisor instance
func New(cfg *config.Config) *Advisor {
	return &Advisor{
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Name returns the synthetic local provider id
func (a *Advisor) Name() string {
	return config.ProviderLocal
}

// IsHealthy always succeeds; the advisor has no external dependencies
func (a *Advisor) IsHealthy(ctx context.Context) error {
	return nil
}

// Generate produces a response for the message. With a custom system
// prompt configured the persona overlay answers; otherwise the message is
// classified by intent and the matching knowledge-table branch renders
// the reply.
func (a *Advisor) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	var message string
	if a.cfg.AI.CustomSystemPrompt != "" {
		message = personaReply(a.cfg.AI.CustomSystemPrompt, req.Message)
	} else {
		message = a.advise(req.Message)
	}

	return &models.GenerationResult{
		Message:  message,
		Provider: config.ProviderLocal,
	}, nil
}

func (a *Advisor) advise(message string) string {
	detected := classifyIntent(message)

	a.logger.Debug("Local advisor dispatch", map[string]interface{}{
		"provider": config.ProviderLocal,
		"intent":   string(detected),
	})

	switch detected {
	case intentStudent:
		return studentResponse(detectStage(message), detectExam(message))
	case intentCareerChange:
		return careerChangeResponse()
	case intentSkills:
		return skillsResponse()
	case intentIndustry:
		return industryResponse()
	case intentGovernment:
		return governmentJobsResponse()
	case intentGeneral:
		return generalCareerResponse()
	default:
		return welcomeResponse()
	}
}
