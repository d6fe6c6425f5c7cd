package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var planJSON = json.RawMessage(`{"headline":"Tidy up offside","tips":["a"],"drills":["b"]}`)

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{{Content: planJSON}}, false, 1},
		{"transient then success", []MockResponse{unavailable(), {Content: planJSON}}, false, 2},
		{"all attempts fail", []MockResponse{unavailable(), unavailable(), unavailable()}, true, 3},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}}, true, 1},
		{
			"invalid response retried once",
			[]MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Content: planJSON},
			},
			true, 2,
		},
		{
			"rate limit honours retry-after",
			[]MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, {Content: planJSON}},
			false, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != string(planJSON) {
				t.Errorf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_MaxTokensErrorType(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}})
	_, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})

	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(unavailable(), MockResponse{Content: planJSON})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, retryConfig()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: planJSON})
	if _, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
