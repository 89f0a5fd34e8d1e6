package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha-utils/internal/config"
	"disha-utils/pkg/models"
)

func advisorWithPrompt(customPrompt string) *Advisor {
	cfg := &config.Config{}
	cfg.AI.Provider = config.ProviderLocal
	cfg.AI.CustomSystemPrompt = customPrompt
	return New(cfg)
}

func generate(t *testing.T, a *Advisor, message string) *models.GenerationResult {
	t.Helper()
	result, err := a.Generate(context.Background(), &models.GenerationRequest{Message: message})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestGenerateNeverErrors(t *testing.T) {
	a := advisorWithPrompt("")

	for _, message := range []string{
		"",
		"hello",
		"I want to change my career",
		"how do I prepare for jee",
		"!!!???",
	} {
		result := generate(t, a, message)
		assert.Equal(t, config.ProviderLocal, result.Provider)
		assert.NotEmpty(t, result.Message)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := advisorWithPrompt("")

	first := generate(t, a, "which industries are growing?")
	second := generate(t, a, "which industries are growing?")
	assert.Equal(t, first.Message, second.Message)
}

func TestCareerChangeResponse(t *testing.T) {
	a := advisorWithPrompt("")

	result := generate(t, a, "I am thinking about a career change into tech")

	assert.Contains(t, result.Message, "## Career Change Roadmap")
	assert.Contains(t, result.Message, "1. ")
	assert.Contains(t, result.Message, "## Growing Industries in India")
}

func TestIntentDispatch(t *testing.T) {
	a := advisorWithPrompt("")

	cases := []struct {
		message string
		heading string
	}{
		{"what skills should I improve?", "## Skills Assessment"},
		{"which industry should I join?", "## Industry Overview"},
		{"tell me about sarkari naukri options", "## Government Jobs in India"},
		{"I need help with my career", "## Career Guidance"},
		{"good morning", "## Welcome to Disha"},
	}

	for _, tc := range cases {
		result := generate(t, a, tc.message)
		assert.Contains(t, result.Message, tc.heading, "message %q", tc.message)
	}
}

func TestStudentGuidance(t *testing.T) {
	a := advisorWithPrompt("")

	result := generate(t, a, "I just finished 12th, what are my options?")
	assert.Contains(t, result.Message, "## Guidance After Class 12")
	assert.Contains(t, result.Message, "## Options After 12th")

	result = generate(t, a, "I am in college preparing for placement season")
	assert.Contains(t, result.Message, "## Making Graduation Count")
}

func TestExamGuides(t *testing.T) {
	a := advisorWithPrompt("")

	cases := map[string]string{
		"how should I prepare for jee?":      "## JEE Preparation Guide",
		"neet preparation tips please":       "## NEET Preparation Guide",
		"I am taking the cat exam this year": "## CAT Preparation Guide",
		"upsc strategy for a beginner":       "## UPSC Preparation Guide",
	}

	for message, heading := range cases {
		result := generate(t, a, message)
		assert.Contains(t, result.Message, heading, "message %q", message)
	}

	// Unknown exam falls back to the generic entrance section
	result := generate(t, a, "entrance exam advice")
	assert.Contains(t, result.Message, "## Entrance Exam Guidance")
}

func TestClassifyIntentOrdering(t *testing.T) {
	// Student keywords win over career-change keywords when both appear
	assert.Equal(t, intentStudent, classifyIntent("I am a student considering a career change"))
	assert.Equal(t, intentCareerChange, classifyIntent("I want to switch careers"))
	assert.Equal(t, intentWelcome, classifyIntent("hi there"))
}

func TestDetectExamWordBoundaries(t *testing.T) {
	assert.Equal(t, "cat", detectExam("preparing for the cat exam"))
	assert.Equal(t, "cat", detectExam("should I take CAT next year"))
	assert.Equal(t, "", detectExam("I love communication and education"))
	assert.Equal(t, "jee", detectExam("jee mains in april"))
}

func TestPersonaOverlay(t *testing.T) {
	a := advisorWithPrompt("You are a friendly career coach named Asha who loves emoji.")

	result := generate(t, a, "I want a career change")

	assert.Contains(t, result.Message, "Hello! 👋")
	assert.Contains(t, result.Message, "I'm Asha")
	assert.Contains(t, result.Message, "transferable skills")
	// Knowledge-table sections stay out of persona mode
	assert.NotContains(t, result.Message, "## Career Change Roadmap")
}

func TestPersonaFormalRegister(t *testing.T) {
	a := advisorWithPrompt("You are a professional career consultant. No emoji.")

	result := generate(t, a, "how should I negotiate salary?")

	assert.NotContains(t, result.Message, "👋")
	assert.NotContains(t, result.Message, "🚀")
	assert.Contains(t, result.Message, "negotiat")
}

func TestPersonaGenericFallthrough(t *testing.T) {
	a := advisorWithPrompt("You are a helpful assistant named Meera.")

	result := generate(t, a, "what is the weather like?")

	assert.Contains(t, result.Message, "Happy to help with your career questions")
}
