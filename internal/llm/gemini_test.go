package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	// Go-typed slices must survive normalization.
	s := geminiSchema(normalizeDefinition(lineupSchema().Definition))

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if got := s.Properties["formation"]; got.Type != genai.TypeString || len(got.Enum) != 3 {
		t.Errorf("formation = %+v", got)
	}
	if got := s.Properties["shirts"]; got.Type != genai.TypeArray || got.Items.Type != genai.TypeInteger {
		t.Errorf("shirts = %+v", got)
	}
	if got := s.Properties["keeper"]; got.Type != genai.TypeObject || len(got.Required) != 1 {
		t.Errorf("keeper = %+v", got)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v, want 2 fields", s.Required)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), BackendConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
