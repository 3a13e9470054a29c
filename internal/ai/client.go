// backend-go/internal/ai/client.go
package ai

import "context"

// GenerateConfig is the per-request tuning passed to the text generator.
type GenerateConfig struct {
	Temperature       *float32
	SystemInstruction string
}

// TextGenerator is the boundary to the generative-language collaborator.
// Implementations return the raw prose reply; the Advisor owns fallbacks.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerateConfig) (string, error)
}
