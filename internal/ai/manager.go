package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"disha-utils/internal/ai/advisor"
	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/internal/metrics"
	"disha-utils/pkg/models"
)

// Manager orchestrates the active provider and the local fallback. It is
// the only place that invokes a remote provider, and the only place where
// remote failures are converted into fallback dispatches.
type Manager struct {
	cfg       *config.Config
	factory   *Factory
	provider  Provider
	advisor   *advisor.Advisor
	augmenter *Augmenter
	limiter   *rate.Limiter
	logger    logging.Logger
	metrics   *metrics.Metrics
	mu        sync.RWMutex
}

// NewManager creates a new AI manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:     cfg,
		factory: NewFactory(cfg),
		advisor: advisor.New(cfg),
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.AI.RateLimit)/60.0), 5),
		logger:  logging.GetGlobalLogger(),
		metrics: metrics.Default(),
	}
}

// Start initializes the manager and creates the configured provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting AI manager", map[string]interface{}{
		"provider": m.cfg.AI.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}

	m.provider = provider
	m.augmenter = NewAugmenter(m, m.cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := provider.IsHealthy(ctx); err != nil {
		// Not fatal: unconfigured credentials surface as per-call
		// fallbacks to the local advisor
		m.logger.Warn("AI provider health check failed - responses will fall back to the local advisor", map[string]interface{}{
			"provider": provider.Name(),
			"error":    err.Error(),
		})
	} else {
		m.logger.Info("AI manager started", map[string]interface{}{
			"provider": provider.Name(),
		})
	}

	return nil
}

// Stop shuts down the AI manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping AI manager")
	m.provider = nil
	return nil
}

func (m *Manager) activeProvider() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.provider == nil {
		return m.advisor
	}
	return m.provider
}

// GenerateResponse produces a response for the message and history. It
// never fails: any remote-provider error is logged, counted and answered
// by the local advisor instead.
func (m *Manager) GenerateResponse(ctx context.Context, message string, history []models.ConversationMessage) *models.GenerationResult {
	startTime := time.Now()
	req := &models.GenerationRequest{
		Message: message,
		History: history,
	}

	provider := m.activeProvider()

	if provider.Name() == config.ProviderLocal {
		result, _ := m.advisor.Generate(ctx, req)
		m.metrics.RecordChatRequest(result.Provider, "ok", time.Since(startTime))
		return result
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return m.fallback(ctx, req, err, startTime)
	}

	callStart := time.Now()
	result, err := provider.Generate(ctx, req)
	m.metrics.RecordProviderCall(provider.Name(), err, fallbackReason(err), time.Since(callStart))
	if err != nil {
		return m.fallback(ctx, req, err, startTime)
	}

	m.metrics.RecordChatRequest(result.Provider, "ok", time.Since(startTime))
	return result
}

// fallback answers the request with the local advisor after a remote
// failure. Diagnostic detail stays in the logs; the caller only sees the
// changed provider id.
func (m *Manager) fallback(ctx context.Context, req *models.GenerationRequest, cause error, startTime time.Time) *models.GenerationResult {
	reason := fallbackReason(cause)

	m.logger.Warn("Remote provider call failed - falling back to local advisor", map[string]interface{}{
		"provider": m.cfg.AI.Provider,
		"reason":   reason,
		"error":    cause.Error(),
	})

	m.metrics.RecordFallback(reason)

	result, _ := m.advisor.Generate(ctx, req)
	m.metrics.RecordChatRequest(result.Provider, "fallback", time.Since(startTime))
	return result
}

// GenerateResponseWithAttachments analyzes the attachments into text,
// folds the summaries into the message and delegates to the normal
// generation path. Attachment-analysis errors propagate to the caller.
func (m *Manager) GenerateResponseWithAttachments(ctx context.Context, message string, history []models.ConversationMessage, attachments []models.Attachment) (string, error) {
	return m.augmenterRef().GenerateWithAttachments(ctx, message, history, attachments)
}

// AnalyzeImage describes an image through a vision-capable provider
func (m *Manager) AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	return m.augmenterRef().AnalyzeImage(ctx, imageURL, prompt)
}

// AnalyzeDocument summarizes extracted document text
func (m *Manager) AnalyzeDocument(ctx context.Context, content, fileName, mimeType string) (string, error) {
	return m.augmenterRef().AnalyzeDocument(ctx, content, fileName, mimeType)
}

func (m *Manager) augmenterRef() *Augmenter {
	m.mu.RLock()
	augmenter := m.augmenter
	m.mu.RUnlock()

	if augmenter == nil {
		m.mu.Lock()
		if m.augmenter == nil {
			m.augmenter = NewAugmenter(m, m.cfg)
		}
		augmenter = m.augmenter
		m.mu.Unlock()
	}
	return augmenter
}

// ProviderName returns the name of the active provider
func (m *Manager) ProviderName() string {
	return m.activeProvider().Name()
}

// CheckHealth performs a health check on the active provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	return m.activeProvider().IsHealthy(ctx)
}
