package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
)

type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
	lastCfg    GenerateConfig
	calls      int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, cfg GenerateConfig) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastCfg = cfg
	return s.reply, s.err
}

func sampleCounts() map[domain.CylinderType]int {
	return map[domain.CylinderType]int{
		domain.TypeDomestic:   392,
		domain.TypeCommercial: 50,
	}
}

func sampleSales() []domain.SalesPoint {
	return []domain.SalesPoint{
		{Day: "Mon", Domestic: 145, Commercial: 42},
		{Day: "Tue", Domestic: 152, Commercial: 38},
	}
}

func TestMissingCredentialFallsBackSynchronously(t *testing.T) {
	adv := NewAdvisor(nil, 0.2, time.Second)
	ctx := context.Background()

	if got := adv.PredictDemand(ctx, sampleCounts(), sampleSales()); got != FallbackNoCredentialForecast {
		t.Errorf("PredictDemand: got %q, want %q", got, FallbackNoCredentialForecast)
	}
	if got := adv.AnalyzeIdleAssets(ctx, nil); got != FallbackNoCredential {
		t.Errorf("AnalyzeIdleAssets: got %q, want %q", got, FallbackNoCredential)
	}
	if got := adv.SafetyAdvice(ctx, "is my regulator safe?"); got != FallbackNoCredential {
		t.Errorf("SafetyAdvice: got %q, want %q", got, FallbackNoCredential)
	}
}

func TestGeneratorErrorMapsToFallbackString(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream unreachable")}
	adv := NewAdvisor(gen, 0.2, time.Second)
	ctx := context.Background()

	if got := adv.PredictDemand(ctx, sampleCounts(), sampleSales()); got != FallbackForecastFailed {
		t.Errorf("PredictDemand: got %q, want %q", got, FallbackForecastFailed)
	}
	if got := adv.AnalyzeIdleAssets(ctx, nil); got != FallbackIdleFailed {
		t.Errorf("AnalyzeIdleAssets: got %q, want %q", got, FallbackIdleFailed)
	}
	if got := adv.SafetyAdvice(ctx, "leak smell"); got != FallbackSafetyFailed {
		t.Errorf("SafetyAdvice: got %q, want %q", got, FallbackSafetyFailed)
	}
}

func TestEmptyReplyMapsToPlaceholder(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	adv := NewAdvisor(gen, 0.2, time.Second)

	if got := adv.PredictDemand(context.Background(), sampleCounts(), sampleSales()); got != emptyForecastReply {
		t.Errorf("got %q, want %q", got, emptyForecastReply)
	}
}

func TestForecastPromptEmbedsCountsAndSeries(t *testing.T) {
	gen := &stubGenerator{reply: "order 60 domestic cylinders"}
	adv := NewAdvisor(gen, 0.2, time.Second)

	reply := adv.PredictDemand(context.Background(), sampleCounts(), sampleSales())

	if reply != "order 60 domestic cylinders" {
		t.Errorf("reply: got %q", reply)
	}
	for _, want := range []string{`"domestic":392`, `"commercial":50`, `"day":"Mon"`, "next 3 days"} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, gen.lastPrompt)
		}
	}
	if gen.lastCfg.Temperature == nil || *gen.lastCfg.Temperature != 0.2 {
		t.Errorf("temperature: got %v, want 0.2", gen.lastCfg.Temperature)
	}
	if gen.lastCfg.SystemInstruction == "" {
		t.Error("forecast call should carry a system instruction")
	}
}

func TestIdleAssetPromptListsCustomers(t *testing.T) {
	gen := &stubGenerator{reply: "high risk"}
	adv := NewAdvisor(gen, 0.2, time.Second)

	idle := []engine.IdleCustomer{
		{CustomerID: "C002", Name: "Priya Patel", DaysSinceRefill: 71},
		{CustomerID: "C001", Name: "Amit Sharma", DaysSinceRefill: 52},
	}
	adv.AnalyzeIdleAssets(context.Background(), idle)

	for _, want := range []string{"Priya Patel", `"daysSinceRefill":71`, "SMS"} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, gen.lastPrompt)
		}
	}
	if gen.lastCfg.Temperature != nil {
		t.Error("idle analysis should not pin a temperature")
	}
}

func TestSafetyAdvicePassesQuestionVerbatim(t *testing.T) {
	gen := &stubGenerator{reply: "close the valve first"}
	adv := NewAdvisor(gen, 0.2, time.Second)

	question := "What do I do if I smell gas at night?"
	reply := adv.SafetyAdvice(context.Background(), question)

	if reply != "close the valve first" {
		t.Errorf("reply: got %q", reply)
	}
	if gen.lastPrompt != question {
		t.Errorf("prompt: got %q, want the question verbatim", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastCfg.SystemInstruction, "LPG") {
		t.Error("safety call should carry the LPG safety system instruction")
	}
}

func TestRepeatedCallsAreIndependent(t *testing.T) {
	gen := &stubGenerator{reply: "steady demand"}
	adv := NewAdvisor(gen, 0.2, time.Second)
	ctx := context.Background()

	first := adv.PredictDemand(ctx, sampleCounts(), sampleSales())
	second := adv.PredictDemand(ctx, sampleCounts(), sampleSales())

	if first != second {
		t.Errorf("same inputs gave different replies: %q vs %q", first, second)
	}
	if gen.calls != 2 {
		t.Errorf("calls: got %d, want 2 (each action issues its own request)", gen.calls)
	}
}
