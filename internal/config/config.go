// Package config loads Touchline's settings from a YAML file and
// TOUCHLINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/touchline/internal/llm"
)

// Config is the merged application configuration.
type Config struct {
	DB   string     `yaml:"db"`
	Log  LogConfig  `yaml:"log"`
	Quiz QuizConfig `yaml:"quiz"`
	LLM  LLMConfig  `yaml:"llm"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"` // text or json
}

// QuizConfig holds question selection settings.
type QuizConfig struct {
	// BankFile replaces the built-in question bank when set.
	BankFile string `yaml:"bank_file"`
	// Seed fixes question shuffling; 0 picks a random seed.
	Seed  int64 `yaml:"seed"`
	Timed bool  `yaml:"timed"`
}

// LLMConfig selects the coaching model. API keys come from the
// environment only.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info", Format: "text"},
		Quiz: QuizConfig{Timed: true},
	}
}

// Dir returns $XDG_CONFIG_HOME/touchline, falling back to ~/.config/touchline.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "touchline"), nil
}

// DefaultPath is the config file used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from TOUCHLINE_* variables.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"DB":           &c.DB,
		"LOG_LEVEL":    &c.Log.Level,
		"LOG_FILE":     &c.Log.File,
		"LOG_FORMAT":   &c.Log.Format,
		"BANK_FILE":    &c.Quiz.BankFile,
		"LLM_PROVIDER": &c.LLM.Provider,
		"LLM_MODEL":    &c.LLM.Model,
	}
	for name, dst := range strs {
		if v := os.Getenv(llm.EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv(llm.EnvPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", llm.EnvPrefix, err)
		}
		c.Quiz.Seed = seed
	}
	if v := os.Getenv(llm.EnvPrefix + "TIMED"); v != "" {
		timed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTIMED: %w", llm.EnvPrefix, err)
		}
		c.Quiz.Timed = timed
	}
	return nil
}

// LLMProviderConfig resolves the provider configuration. An explicit
// provider wins, then a TOUCHLINE_ key for the default backend, then the
// vendors' own API key variables. ok is false when nothing is configured.
func (c Config) LLMProviderConfig() (cfg llm.Config, ok bool) {
	cfg = llm.ConfigFromEnv()
	switch {
	case c.LLM.Provider != "":
		cfg.Provider = strings.ToLower(c.LLM.Provider)
		ok = true
	case cfg.Backend() != nil && cfg.Backend().APIKey != "":
		ok = true
	default:
		cfg, ok = llm.DiscoverConfig()
	}
	if ok && c.LLM.Model != "" {
		if b := cfg.Backend(); b != nil {
			b.Model = c.LLM.Model
		}
	}
	return cfg, ok
}
