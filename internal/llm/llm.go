package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/joestump/promptsmith/internal/config"
)

// Fixed sampling parameters for every provider.
const (
	Temperature = 0.5
	TopP        = 0.95
)

var (
	// ErrNotConfigured is returned when no provider credential is set.
	// The model is never contacted in that case.
	ErrNotConfigured = errors.New("LLM API key is not configured")

	// ErrInvalidRequest is returned when persona or task is missing.
	ErrInvalidRequest = errors.New("invalid generation request")
)

// GenerationError wraps a failed model call. Its message is safe to show to
// the caller because it describes their own request.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "Failed to generate prompt: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// Generator sends one prompt to a generative model and returns its raw text.
// Implementations make a single non-streaming call and never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New creates the Generator selected by cfg.LLM.Provider. It returns
// ErrNotConfigured when the API key is unset.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg.LLM.APIKey == "" {
		return nil, ErrNotConfigured
	}
	switch cfg.LLM.Provider {
	case "", "gemini":
		return newGeminiGenerator(ctx, cfg)
	case "anthropic":
		return newAnthropicGenerator(cfg), nil
	case "openai", "openai-compatible":
		return newOpenAIGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
