package llm

import (
	"context"
	"fmt"

	"github.com/abrar/astrolearn/internal/store"
)

// NewProvider constructs the provider named by cfg.Provider, wrapped with
// request logging (when repo is non-nil) and retry handling.
func NewProvider(ctx context.Context, cfg Config, repo store.LLMRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "openrouter":
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		p = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", cfg.Provider, err)
	}

	if repo != nil {
		p = WithLogging(p, cfg.Provider, repo)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from environment configuration.
// If the ASTRO_* variables do not yield a valid config, standard API key
// variables (OPENROUTER_API_KEY, OPENAI_API_KEY, ...) are probed as a
// fallback.
func NewProviderFromEnv(ctx context.Context, repo store.LLMRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, repo)
}
