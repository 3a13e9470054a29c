// backend-go/internal/ai/gemini.go
package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/lpgflow/backend-go/internal/config"
)

// ErrMissingCredential signals that no API key is configured. Callers treat
// this as "run without AI", not as a startup failure.
var ErrMissingCredential = errors.New("gemini: api key is not configured")

// GeminiClient implements TextGenerator over the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string, cfg GenerateConfig) (string, error) {
	var gcfg *genai.GenerateContentConfig
	if cfg.Temperature != nil || cfg.SystemInstruction != "" {
		gcfg = &genai.GenerateContentConfig{Temperature: cfg.Temperature}
		if cfg.SystemInstruction != "" {
			gcfg.SystemInstruction = genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser)
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), gcfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return resp.Text(), nil
}
