package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       BackendConfig
		wantErr   bool
		wantModel string
	}{
		{"valid config", BackendConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-001"}, false, "google/gemini-2.0-flash-001"},
		{"empty API key", BackendConfig{Model: "google/gemini-2.0-flash-001"}, true, ""},
		{"friendly names are not mapped", BackendConfig{APIKey: "sk-or-test", Model: "gpt-mini"}, false, "gpt-mini"},
		{"custom base URL", BackendConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku", BaseURL: "https://or.example/v1"}, false, "anthropic/claude-3-haiku"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.ModelID() != tt.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
