package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported AI provider identifiers
const (
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderHuggingFace = "huggingface"
	ProviderGoogle      = "google"
	ProviderGroq        = "groq"
	ProviderLocal       = "local"
)

// Generation parameter defaults applied when unset or unparsable
const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	AI struct {
		Provider           string        `yaml:"provider"`
		OpenAIAPIKey       string        `yaml:"openai_api_key"`
		AnthropicAPIKey    string        `yaml:"anthropic_api_key"`
		HuggingFaceAPIKey  string        `yaml:"huggingface_api_key"`
		GoogleAPIKey       string        `yaml:"google_api_key"`
		GroqAPIKey         string        `yaml:"groq_api_key"`
		OpenAIModel        string        `yaml:"openai_model"`
		AnthropicModel     string        `yaml:"anthropic_model"`
		HuggingFaceModel   string        `yaml:"huggingface_model"`
		GoogleModel        string        `yaml:"google_model"`
		GroqModel          string        `yaml:"groq_model"`
		MaxTokens          int           `yaml:"max_tokens"`
		Temperature        float64       `yaml:"temperature"`
		CustomSystemPrompt string        `yaml:"custom_system_prompt"`
		Timeout            time.Duration `yaml:"timeout"`
		RateLimit          int           `yaml:"rate_limit"` // remote calls per minute
	} `yaml:"ai"`

	History struct {
		Backend string        `yaml:"backend"` // "redis" or "memory"
		Window  int           `yaml:"window"`  // messages loaded per session
		TTL     time.Duration `yaml:"ttl"`
	} `yaml:"history"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"redis"`

	Logging struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"` // json or text
		Output   string `yaml:"output"` // stdout or file
		FilePath string `yaml:"file_path"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})
}

// LoadConfig loads configuration from file and environment variables.
// Precedence: defaults < YAML file < environment.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}
	config.setDefaults()

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	config.loadFromEnv()

	if !isSupportedProvider(config.AI.Provider) {
		return nil, fmt.Errorf("unsupported AI provider: %s", config.AI.Provider)
	}

	return config, nil
}

func (c *Config) setDefaults() {
	c.Server.Port = 8080
	c.Server.Host = "0.0.0.0"
	c.Server.ReadTimeout = 30 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = 60 * time.Second

	c.AI.Provider = ProviderLocal
	c.AI.OpenAIModel = "gpt-4o-mini"
	c.AI.AnthropicModel = "claude-3-haiku-20240307"
	c.AI.HuggingFaceModel = "mistralai/Mistral-7B-Instruct-v0.3"
	c.AI.GoogleModel = "gemini-1.5-flash"
	c.AI.GroqModel = "llama-3.3-70b-versatile"
	c.AI.MaxTokens = DefaultMaxTokens
	c.AI.Temperature = DefaultTemperature
	c.AI.Timeout = 120 * time.Second
	c.AI.RateLimit = 60

	c.History.Backend = "redis"
	c.History.Window = 50
	c.History.TTL = 24 * time.Hour

	c.Redis.URL = "redis://localhost:6379"
	c.Redis.DB = 0
	c.Redis.Timeout = 5 * time.Second

	c.Logging.Level = "info"
	c.Logging.Format = "json"
	c.Logging.Output = "stdout"
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if provider := os.Getenv("AI_PROVIDER"); provider != "" {
		c.AI.Provider = strings.ToLower(strings.TrimSpace(provider))
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.AI.OpenAIAPIKey = key
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.AI.AnthropicAPIKey = key
	}

	if key := os.Getenv("HUGGINGFACE_API_KEY"); key != "" {
		c.AI.HuggingFaceAPIKey = key
	}

	if key := os.Getenv("GOOGLE_AI_API_KEY"); key != "" {
		c.AI.GoogleAPIKey = key
	}

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		c.AI.GroqAPIKey = key
	}

	// Unparsable values keep the documented defaults
	if maxTokens := os.Getenv("MAX_TOKENS"); maxTokens != "" {
		if tokens, err := strconv.Atoi(maxTokens); err == nil && tokens > 0 {
			c.AI.MaxTokens = tokens
		}
	}

	if temperature := os.Getenv("TEMPERATURE"); temperature != "" {
		if temp, err := strconv.ParseFloat(temperature, 64); err == nil {
			c.AI.Temperature = temp
		}
	}

	if prompt := os.Getenv("CUSTOM_SYSTEM_PROMPT"); prompt != "" {
		c.AI.CustomSystemPrompt = prompt
	}

	if model := os.Getenv("AI_MODEL"); model != "" {
		switch c.AI.Provider {
		case ProviderOpenAI:
			c.AI.OpenAIModel = model
		case ProviderAnthropic:
			c.AI.AnthropicModel = model
		case ProviderHuggingFace:
			c.AI.HuggingFaceModel = model
		case ProviderGoogle:
			c.AI.GoogleModel = model
		case ProviderGroq:
			c.AI.GroqModel = model
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if backend := os.Getenv("HISTORY_BACKEND"); backend != "" {
		c.History.Backend = backend
	}
}

// APIKeyFor returns the configured credential for the given provider id.
// The local provider needs no credential and always returns "".
func (c *Config) APIKeyFor(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return c.AI.OpenAIAPIKey
	case ProviderAnthropic:
		return c.AI.AnthropicAPIKey
	case ProviderHuggingFace:
		return c.AI.HuggingFaceAPIKey
	case ProviderGoogle:
		return c.AI.GoogleAPIKey
	case ProviderGroq:
		return c.AI.GroqAPIKey
	default:
		return ""
	}
}

// IsPlaceholderKey reports whether a credential value is absent or an
// obvious template placeholder. Placeholders are not a configuration
// error at load time; they surface as a fallback trigger at call time.
func IsPlaceholderKey(key string) bool {
	if strings.TrimSpace(key) == "" {
		return true
	}
	lower := strings.ToLower(key)
	for _, marker := range []string{"your-", "your_", "changeme", "placeholder", "xxxx"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderHuggingFace, ProviderGoogle, ProviderGroq, ProviderLocal:
		return true
	}
	return false
}
