package llm

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joestump/promptsmith/internal/metrics"
	"github.com/joestump/promptsmith/internal/persona"
)

// Generation is a successful prompt rewrite.
type Generation struct {
	ID        string
	PersonaID string
	Prompt    string
	Duration  time.Duration
}

// Optimizer composes the meta-prompt and runs it through a Generator.
type Optimizer struct {
	gen      Generator
	provider string
}

// NewOptimizer creates an Optimizer. A nil gen yields an Optimizer whose
// every call fails with ErrNotConfigured.
func NewOptimizer(gen Generator, provider string) *Optimizer {
	if provider == "" {
		provider = "gemini"
	}
	return &Optimizer{gen: gen, provider: provider}
}

// Configured reports whether a provider credential was available at start.
func (o *Optimizer) Configured() bool {
	return o != nil && o.gen != nil
}

// Optimize rewrites task for persona p with exactly one model call.
// Errors are ErrNotConfigured, ErrInvalidRequest (wrapped) or *GenerationError.
func (o *Optimizer) Optimize(ctx context.Context, p persona.Persona, task string) (*Generation, error) {
	if !o.Configured() {
		return nil, ErrNotConfigured
	}
	composed, err := Compose(p, task)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	start := time.Now()
	out, err := o.gen.Generate(ctx, composed)
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(o.provider).Observe(elapsed.Seconds())

	if err == nil {
		out = strings.TrimSpace(out)
		if out == "" {
			err = errors.New("model returned an empty response")
		}
	}
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(o.provider, "error").Inc()
		log.Printf("llm: generation %s persona=%s failed after %s: %v", id, p.ID, elapsed.Round(time.Millisecond), err)
		return nil, &GenerationError{Err: err}
	}

	metrics.GenerationsTotal.WithLabelValues(o.provider, "success").Inc()
	log.Printf("llm: generation %s persona=%s ok in %s", id, p.ID, elapsed.Round(time.Millisecond))
	return &Generation{ID: id, PersonaID: p.ID, Prompt: out, Duration: elapsed}, nil
}
