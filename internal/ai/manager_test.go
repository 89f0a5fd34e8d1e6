package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha-utils/internal/ai/providers"
	"disha-utils/internal/config"
	"disha-utils/pkg/models"
)

// stubProvider simulates a remote provider with a fixed outcome
type stubProvider struct {
	name   string
	result *models.GenerationResult
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) IsHealthy(ctx context.Context) error { return s.err }

func (s *stubProvider) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func managerTestConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.AI.Provider = provider
	cfg.AI.MaxTokens = config.DefaultMaxTokens
	cfg.AI.Temperature = config.DefaultTemperature
	cfg.AI.RateLimit = 600
	return cfg
}

func managerWithStub(stub *stubProvider) *Manager {
	m := NewManager(managerTestConfig(stub.name))
	m.provider = stub
	return m
}

func TestGenerateResponseSuccess(t *testing.T) {
	stub := &stubProvider{
		name: config.ProviderOpenAI,
		result: &models.GenerationResult{
			Message:  "Remote answer",
			Provider: config.ProviderOpenAI,
		},
	}
	m := managerWithStub(stub)

	result := m.GenerateResponse(context.Background(), "hello", nil)

	require.NotNil(t, result)
	assert.Equal(t, "Remote answer", result.Message)
	assert.Equal(t, config.ProviderOpenAI, result.Provider)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateResponseFallsBackOnProviderError(t *testing.T) {
	cases := map[string]error{
		"not configured": &providers.NotConfiguredError{Provider: "openai", EnvVar: "OPENAI_API_KEY"},
		"http error":     &providers.StatusError{Provider: "openai", StatusCode: 429, Status: "429 Too Many Requests"},
		"malformed":      &providers.MalformedResponseError{Provider: "openai", Detail: "missing choices[0]"},
		"transport":      errors.New("connection refused"),
	}

	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			m := managerWithStub(&stubProvider{name: config.ProviderOpenAI, err: cause})

			result := m.GenerateResponse(context.Background(), "I want to change my career", nil)

			require.NotNil(t, result)
			assert.Equal(t, config.ProviderLocal, result.Provider)
			assert.Contains(t, result.Message, "## Career Change Roadmap")
		})
	}
}

func TestGenerateResponseLocalProvider(t *testing.T) {
	m := NewManager(managerTestConfig(config.ProviderLocal))
	require.NoError(t, m.Start())

	result := m.GenerateResponse(context.Background(), "what skills should I build?", nil)

	require.NotNil(t, result)
	assert.Equal(t, config.ProviderLocal, result.Provider)
	assert.Contains(t, result.Message, "## Skills Assessment")
	assert.Equal(t, config.ProviderLocal, m.ProviderName())
}

func TestStartWithUnconfiguredRemoteProvider(t *testing.T) {
	// An unusable credential is not a startup failure; it surfaces as
	// per-call fallbacks instead.
	m := NewManager(managerTestConfig(config.ProviderOpenAI))
	require.NoError(t, m.Start())

	result := m.GenerateResponse(context.Background(), "hello there", nil)

	require.NotNil(t, result)
	assert.Equal(t, config.ProviderLocal, result.Provider)
}

func TestManagerStop(t *testing.T) {
	m := NewManager(managerTestConfig(config.ProviderLocal))
	require.NoError(t, m.Start())
	require.NoError(t, m.Stop())

	// After Stop the advisor still answers
	result := m.GenerateResponse(context.Background(), "hello", nil)
	assert.Equal(t, config.ProviderLocal, result.Provider)
}

func TestFallbackReason(t *testing.T) {
	cases := []struct {
		err    error
		reason string
	}{
		{&providers.NotConfiguredError{Provider: "groq", EnvVar: "GROQ_API_KEY"}, ReasonNotConfigured},
		{&providers.StatusError{Provider: "openai", StatusCode: 500}, ReasonHTTPError},
		{&providers.MalformedResponseError{Provider: "google", Detail: "empty"}, ReasonMalformed},
		{context.Canceled, ReasonCanceled},
		{context.DeadlineExceeded, ReasonCanceled},
		{errors.New("dial tcp: connection refused"), ReasonRequestFailed},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.reason, fallbackReason(tc.err), "error %v", tc.err)
	}
}

func TestCheckHealth(t *testing.T) {
	m := NewManager(managerTestConfig(config.ProviderLocal))
	require.NoError(t, m.Start())
	assert.NoError(t, m.CheckHealth(context.Background()))

	stub := &stubProvider{name: config.ProviderOpenAI, err: errors.New("no credential")}
	m = managerWithStub(stub)
	assert.Error(t, m.CheckHealth(context.Background()))
}
