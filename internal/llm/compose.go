package llm

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/joestump/promptsmith/internal/persona"
)

//go:embed meta_prompt.tmpl
var metaPromptSource string

var metaPrompt = template.Must(template.New("meta_prompt").Parse(metaPromptSource))

// ComposeData holds the variables available in the meta-prompt template.
type ComposeData struct {
	PersonaPrompt string
	Task          string
}

// Compose builds the meta-prompt that asks the model to rewrite task for p.
// Both the persona template and the task are embedded verbatim.
func Compose(p persona.Persona, task string) (string, error) {
	if strings.TrimSpace(p.Prompt) == "" {
		return "", fmt.Errorf("%w: persona %q has no prompt template", ErrInvalidRequest, p.ID)
	}
	if strings.TrimSpace(task) == "" {
		return "", fmt.Errorf("%w: task is blank", ErrInvalidRequest)
	}

	var buf bytes.Buffer
	if err := metaPrompt.Execute(&buf, ComposeData{PersonaPrompt: p.Prompt, Task: task}); err != nil {
		return "", fmt.Errorf("render meta-prompt: %w", err)
	}
	return buf.String(), nil
}
