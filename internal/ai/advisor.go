// backend-go/internal/ai/advisor.go
package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
)

// Fixed user-visible strings. The Advisor never surfaces an error to its
// caller; the UI layer always receives displayable text.
const (
	FallbackNoCredentialForecast = "AI Service Unavailable (Check API Key)"
	FallbackNoCredential         = "AI Service Unavailable"
	FallbackForecastFailed       = "Error generating demand prediction."
	FallbackIdleFailed           = "Error analyzing idle assets."
	FallbackSafetyFailed         = "Sorry, I can't answer that right now."

	emptyForecastReply = "Unable to generate prediction."
	emptyIdleReply     = "No analysis available."
	emptySafetyReply   = "I couldn't understand that."
)

const defaultRequestTimeout = 30 * time.Second

// Advisor wraps the text-generation collaborator with the three advisory
// calls the dashboards offer. A nil generator means no credential was
// configured; every call then falls back synchronously.
type Advisor struct {
	gen         TextGenerator
	temperature float32
	timeout     time.Duration
}

func NewAdvisor(gen TextGenerator, temperature float64, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Advisor{
		gen:         gen,
		temperature: float32(temperature),
		timeout:     timeout,
	}
}

// PredictDemand asks the collaborator for a short-term demand forecast from
// the count-by-type snapshot and the 7-day sales series. The reply is opaque
// prose, displayed as-is.
func (a *Advisor) PredictDemand(ctx context.Context, counts map[domain.CylinderType]int, sales []domain.SalesPoint) string {
	if a.gen == nil {
		return FallbackNoCredentialForecast
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	temp := a.temperature
	reply, err := a.gen.GenerateText(ctx, buildForecastPrompt(counts, sales), GenerateConfig{
		Temperature:       &temp,
		SystemInstruction: forecastSystemInstruction,
	})
	if err != nil {
		log.Error().Err(err).Msg("demand forecast call failed")
		return FallbackForecastFailed
	}
	if reply == "" {
		return emptyForecastReply
	}
	return reply
}

// AnalyzeIdleAssets asks for a risk read and an SMS template for customers
// holding cylinders past the return window.
func (a *Advisor) AnalyzeIdleAssets(ctx context.Context, idle []engine.IdleCustomer) string {
	if a.gen == nil {
		return FallbackNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.gen.GenerateText(ctx, buildIdleAssetPrompt(idle), GenerateConfig{})
	if err != nil {
		log.Error().Err(err).Msg("idle asset analysis call failed")
		return FallbackIdleFailed
	}
	if reply == "" {
		return emptyIdleReply
	}
	return reply
}

// SafetyAdvice answers a free-text customer question under the LPG safety
// system instruction.
func (a *Advisor) SafetyAdvice(ctx context.Context, question string) string {
	if a.gen == nil {
		return FallbackNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.gen.GenerateText(ctx, question, GenerateConfig{
		SystemInstruction: safetySystemInstruction,
	})
	if err != nil {
		log.Error().Err(err).Msg("safety advice call failed")
		return FallbackSafetyFailed
	}
	if reply == "" {
		return emptySafetyReply
	}
	return reply
}
