package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/touchline/internal/store"
)

// NewProvider builds the configured backend and wraps it, outermost first,
// in retry, circuit breaker and logging decorators. Every attempt is
// therefore logged, and retries stop early once the breaker opens.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, eventRepo, logger)
	p = WithBreaker(p, cfg.Breaker, logger)
	p = WithRetry(p, cfg.Retry)
	return p, nil
}
