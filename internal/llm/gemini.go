package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/joestump/promptsmith/internal/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(ctx context.Context, cfg *config.Config) (*geminiGenerator, error) {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultGeminiModel
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.LLM.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.LLM.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](Temperature),
		TopP:        genai.Ptr[float32](TopP),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
