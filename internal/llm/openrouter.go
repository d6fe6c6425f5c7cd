package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an OpenAIProvider aimed at OpenRouter, whose API
// is OpenAI-compatible.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider for OpenRouter. Model IDs are
// passed through unchanged.
func NewOpenRouterProvider(cfg BackendConfig) (*OpenRouterProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	inner, err := newOpenAIProviderRaw(cfg)
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
