// Package llm talks to hosted language models. Every backend returns JSON
// checked against the caller's schema; decorators add retries, a circuit
// breaker and request logging into the event store.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a single completion.
type Provider interface {
	// Generate sends req and returns the model's output. When req.Schema is
	// set the content is JSON that has already passed schema validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the backend for structured JSON output.
	// Without it, Content carries the raw text.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the backend default
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names the JSON shape a response must take.
type Schema struct {
	// Name is kebab-case, e.g. "study-plan". Anthropic and OpenAI both
	// surface it to the model.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
