package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/touchline/internal/llm"
)

// clearEnv blanks every variable Load and LLMProviderConfig consult.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TOUCHLINE_DB", "TOUCHLINE_LOG_LEVEL", "TOUCHLINE_LOG_FILE", "TOUCHLINE_LOG_FORMAT",
		"TOUCHLINE_BANK_FILE", "TOUCHLINE_SEED", "TOUCHLINE_TIMED",
		"TOUCHLINE_LLM_PROVIDER", "TOUCHLINE_LLM_MODEL",
		"TOUCHLINE_ANTHROPIC_API_KEY", "TOUCHLINE_OPENAI_API_KEY",
		"TOUCHLINE_GEMINI_API_KEY", "TOUCHLINE_OPENROUTER_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
db: /tmp/touchline.db
log:
  level: debug
quiz:
  seed: 7
  timed: false
llm:
  provider: openai
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOUCHLINE_LOG_LEVEL", "warn")
	t.Setenv("TOUCHLINE_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DB != "/tmp/touchline.db" {
		t.Errorf("DB = %q", cfg.DB)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want env override warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default text", cfg.Log.Format)
	}
	if cfg.Quiz.Seed != 42 || cfg.Quiz.Timed {
		t.Errorf("Quiz = %+v", cfg.Quiz)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider = %q", cfg.LLM.Provider)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad yaml", "log: [unclosed", nil},
		{"bad seed", "", map[string]string{"TOUCHLINE_SEED": "seven"}},
		{"bad timed", "", map[string]string{"TOUCHLINE_TIMED": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.file != "" {
				os.WriteFile(path, []byte(tt.file), 0o644)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Default()
	want.Quiz.BankFile = "/data/bank.yaml"
	want.LLM = LLMConfig{Provider: "gemini", Model: "gemini-pro"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/xdg/touchline/config.yaml" {
		t.Errorf("DefaultPath() = %q", p)
	}
}

func TestLLMProviderConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          LLMConfig
		env          map[string]string
		wantOK       bool
		wantProvider string
		wantModel    string
	}{
		{name: "nothing configured"},
		{
			name:         "explicit provider and model",
			cfg:          LLMConfig{Provider: "OpenAI", Model: "gpt-4.1"},
			env:          map[string]string{"TOUCHLINE_OPENAI_API_KEY": "sk-test"},
			wantOK:       true,
			wantProvider: llm.ProviderOpenAI,
			wantModel:    "gpt-4.1",
		},
		{
			name:         "touchline key for default backend",
			env:          map[string]string{"TOUCHLINE_ANTHROPIC_API_KEY": "sk-ant"},
			wantOK:       true,
			wantProvider: llm.ProviderAnthropic,
			wantModel:    "claude-haiku",
		},
		{
			name:         "vendor key discovered",
			env:          map[string]string{"GEMINI_API_KEY": "g-key"},
			wantOK:       true,
			wantProvider: llm.ProviderGemini,
			wantModel:    "gemini-flash",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			c := Default()
			c.LLM = tt.cfg

			got, ok := c.LLMProviderConfig()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Provider != tt.wantProvider {
				t.Errorf("Provider = %q, want %q", got.Provider, tt.wantProvider)
			}
			if m := got.Backend().Model; m != tt.wantModel {
				t.Errorf("Model = %q, want %q", m, tt.wantModel)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}
