package estimate

import (
	"context"
	"fmt"

	"digaxy-assistant/pkg/gemini"
)

// Oracle is the external estimation aid. It is strictly best-effort: any
// error routes the estimator to its deterministic fallback and is never
// surfaced to the conversation.
type Oracle interface {
	// GenerateText sends a prompt and returns the model's raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiOracle struct {
	client *gemini.Client
}

// NewGeminiOracle adapts the Gemini client to the Oracle interface.
func NewGeminiOracle(client *gemini.Client) Oracle {
	return &geminiOracle{client: client}
}

func (o *geminiOracle) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			// Low temperature for deterministic JSON output
			Temperature:     0.2,
			MaxOutputTokens: 512,
		},
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", o.client.Model())
	}
	return text, nil
}
