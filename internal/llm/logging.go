package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/touchline/internal/store"
)

// LoggingProvider records every request as an LLM event and a log line.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithLogging wraps p. A nil repo skips event persistence; a nil logger
// uses slog.Default.
func WithLogging(p Provider, provider string, repo store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency", latency, "err", err)
	} else {
		l.logger.Debug("llm request",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency", latency, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.logger.Warn("record llm request event", "err", logErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders a request for the event log, one section per
// message.
func serializeRequest(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", label, body)
	}

	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
