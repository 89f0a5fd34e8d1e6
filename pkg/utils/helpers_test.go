package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "2.50s", FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "1.5m", FormatDuration(90*time.Second))
	assert.Equal(t, "2.0h", FormatDuration(2*time.Hour))
}

func TestContains(t *testing.T) {
	slice := []string{"openai", "groq", "local"}

	assert.True(t, Contains(slice, "groq"))
	assert.False(t, Contains(slice, "azure"))
	assert.False(t, Contains(nil, "anything"))
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "value", GetStringOrDefault("value", "default"))
	assert.Equal(t, "default", GetStringOrDefault("", "default"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "", TruncateString("anything", 0))

	long := strings.Repeat("a", 20)
	got := TruncateString(long, 10)
	assert.Equal(t, strings.Repeat("a", 10)+"...", got)
}
