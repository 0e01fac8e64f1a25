package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/store"
)

// NewProvider builds the configured backend wrapped as
// retry -> logging -> backend.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, repo, log), cfg.Retry), nil
}

// unconfigured stands in when no backend could be built, so the app can
// still start and report the problem on each request.
type unconfigured struct {
	reason error
}

// Unconfigured returns a Provider whose every call fails with
// ErrNotConfigured wrapping reason.
func Unconfigured(reason error) Provider {
	return unconfigured{reason: reason}
}

func (u unconfigured) Generate(context.Context, Request) (*Response, error) {
	if u.reason == nil {
		return nil, ErrNotConfigured
	}
	return nil, fmt.Errorf("%w: %v", ErrNotConfigured, u.reason)
}

func (u unconfigured) ModelID() string { return "none" }
