package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM backend. Provider is one of
// "anthropic", "openai", "gemini", "openrouter", or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic backend. Model accepts a
// short alias ("claude-haiku") or a full model ID.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI backend. BaseURL points the client
// at any OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig configures the OpenRouter backend. Model IDs are
// vendor-prefixed, e.g. "google/gemini-2.0-flash-exp".
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the retry middleware's backoff schedule.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap model of each backend and a modest retry
// schedule.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays QUIZDECK_* environment variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "QUIZDECK_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "QUIZDECK_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "QUIZDECK_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "QUIZDECK_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "QUIZDECK_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "QUIZDECK_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "QUIZDECK_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "QUIZDECK_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "QUIZDECK_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "QUIZDECK_OPENROUTER_MODEL")

	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the providers' standard API key variables, in
// the order Gemini, OpenAI, Anthropic, OpenRouter, and configures the
// first one found. The second return is false when no key is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		envKey   string
		provider string
		apiKey   *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envKey); k != "" {
			cfg.Provider = p.provider
			*p.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("QUIZDECK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZDECK_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZDECK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("QUIZDECK_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// canonicalModel resolves a short alias against a backend's alias table;
// anything not in the table is taken as a full model ID.
func canonicalModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
