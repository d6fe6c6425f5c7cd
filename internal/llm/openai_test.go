package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(BackendConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func openaiCompletion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func openaiFailure(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var got struct {
		Model          string `json:"model"`
		Messages       []struct{ Role, Content string }
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name string `json:"name"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	handler := openaiCompletion(`{"formation":"4-3-3","captain":"Ana"}`, "stop")
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		handler(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You pick lineups.",
		Messages:  []Message{{Role: RoleUser, Content: "Pick one."}},
		Schema:    lineupSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q", resp.StopReason)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if got.ResponseFormat.Type != "json_schema" || got.ResponseFormat.JSONSchema.Name != "test-lineup" {
		t.Errorf("response_format = %+v", got.ResponseFormat)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			"rate limit",
			openaiFailure(http.StatusTooManyRequests, "tokens"),
			func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			"server error",
			openaiFailure(http.StatusInternalServerError, "server_error"),
			func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			"truncated",
			openaiCompletion(`{"formation":`, "length"),
			func(err error) bool { var e *ErrMaxTokensExceeded; return errors.As(err, &e) },
		},
		{
			"schema mismatch",
			openaiCompletion(`{"captain":"Ana"}`, "stop"),
			func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, tt.handler)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				Schema:    lineupSchema(),
				MaxTokens: 100,
			})
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestOpenAIModelMapping(t *testing.T) {
	p, err := NewOpenAIProvider(BackendConfig{APIKey: "k", Model: "gpt-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4.1-mini" {
		t.Errorf("model = %q, want gpt-4.1-mini", p.ModelID())
	}
}
