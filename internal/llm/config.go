package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "TOUCHLINE_"

// Config selects and configures a provider.
type Config struct {
	Provider string

	Anthropic  BackendConfig
	OpenAI     BackendConfig
	Gemini     BackendConfig
	OpenRouter BackendConfig

	Retry   RetryConfig
	Breaker BreakerConfig

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration
}

// BackendConfig holds the credentials and model for one backend.
type BackendConfig struct {
	APIKey  string
	Model   string
	BaseURL string // openai-compatible backends only
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// BreakerConfig configures the circuit breaker in front of the backend.
type BreakerConfig struct {
	// Failures is the run of consecutive failed calls that opens the breaker.
	// Zero disables the breaker.
	Failures int

	// Cooldown is how long the breaker stays open before a trial call.
	Cooldown time.Duration
}

// DefaultConfig returns a Config with defaults for every backend.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  BackendConfig{Model: "claude-haiku"},
		OpenAI:     BackendConfig{Model: "gpt-4o-mini"},
		Gemini:     BackendConfig{Model: "gemini-flash"},
		OpenRouter: BackendConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Breaker: BreakerConfig{
			Failures: 3,
			Cooldown: time.Minute,
		},
		Timeout: 30 * time.Second,
	}
}

// Backend returns the settings of the selected provider.
func (c *Config) Backend() *BackendConfig {
	switch c.Provider {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	}
	return nil
}

// envBindings maps TOUCHLINE_* suffixes to the fields they set.
func (c *Config) envBindings() map[string]*string {
	return map[string]*string{
		"LLM_PROVIDER":        &c.Provider,
		"ANTHROPIC_API_KEY":   &c.Anthropic.APIKey,
		"ANTHROPIC_MODEL":     &c.Anthropic.Model,
		"OPENAI_API_KEY":      &c.OpenAI.APIKey,
		"OPENAI_MODEL":        &c.OpenAI.Model,
		"OPENAI_BASE_URL":     &c.OpenAI.BaseURL,
		"GEMINI_API_KEY":      &c.Gemini.APIKey,
		"GEMINI_MODEL":        &c.Gemini.Model,
		"OPENROUTER_API_KEY":  &c.OpenRouter.APIKey,
		"OPENROUTER_MODEL":    &c.OpenRouter.Model,
		"OPENROUTER_BASE_URL": &c.OpenRouter.BaseURL,
	}
}

// ApplyEnv overrides fields from TOUCHLINE_* environment variables.
func (c *Config) ApplyEnv() {
	for suffix, field := range c.envBindings() {
		if v := os.Getenv(EnvPrefix + suffix); v != "" {
			*field = v
		}
	}
}

// ConfigFromEnv builds a Config from TOUCHLINE_* variables over defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables and
// returns a Config for the first one set. The bool is false when none is.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"GEMINI_API_KEY", ProviderGemini},
		{"OPENROUTER_API_KEY", ProviderOpenRouter},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			cfg.Backend().APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and has its key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	b := c.Backend()
	if b == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if b.APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			EnvPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
