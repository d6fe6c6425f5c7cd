package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), Request{System: "sys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"a":1}` || resp.Usage.InputTokens != 10 || resp.StopReason != "end" {
		t.Errorf("first response = %+v", resp)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("second call: expected ErrRateLimit, got %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("drained queue: expected ErrProviderUnavailable, got %T", err)
	}

	if mock.CallCount() != 3 || mock.Calls[0].System != "sys" {
		t.Errorf("calls = %+v", mock.Calls)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("model = %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("expected %q, got %q", PurposeUnknown, p)
	}

	ctx = WithPurpose(ctx, PurposeCoach)
	if p := PurposeFrom(ctx); p != PurposeCoach {
		t.Fatalf("expected %q, got %q", PurposeCoach, p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, "TOUCHLINE_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: BackendConfig{APIKey: "sk-test"}}, ""},
		{"openrouter without key", Config{Provider: "openrouter"}, "TOUCHLINE_OPENROUTER_API_KEY"},
		{"gemini with key", Config{Provider: "gemini", Gemini: BackendConfig{APIKey: "g"}}, ""},
		{"mock needs no key", Config{Provider: "mock"}, ""},
		{"unknown provider", Config{Provider: "carrier-pigeon"}, "unknown LLM provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TOUCHLINE_LLM_PROVIDER", "openrouter")
	t.Setenv("TOUCHLINE_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("TOUCHLINE_OPENROUTER_MODEL", "meta-llama/llama-3.1-8b-instruct")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenRouter {
		t.Errorf("provider = %q", cfg.Provider)
	}
	b := cfg.Backend()
	if b.APIKey != "sk-or" || b.Model != "meta-llama/llama-3.1-8b-instruct" {
		t.Errorf("backend = %+v", b)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("untouched default changed: %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without keys")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("DiscoverConfig = %+v, %v", cfg, ok)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "nope"}, nil, nil); err == nil {
		t.Error("expected error for unknown provider")
	}
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Error("expected error for missing key")
	}
}
