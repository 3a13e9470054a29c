// backend-go/internal/service/insight_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lpgflow/backend-go/internal/ai"
	"github.com/lpgflow/backend-go/internal/cache"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository"
)

const (
	kindForecast = "forecast"
	kindIdle     = "idle_analysis"
	kindSafety   = "safety_qa"
)

// InsightService drives the generative-AI actions. Each call is an explicit
// user trigger; the cache only short-circuits identical payloads within the
// TTL, and force bypasses it for a manual recalculate.
type InsightService struct {
	repo    repository.DistributorRepository
	agg     *engine.Aggregator
	advisor *ai.Advisor
	cache   cache.AdviceCache
	now     func() time.Time
}

func NewInsightService(repo repository.DistributorRepository, agg *engine.Aggregator, advisor *ai.Advisor, cacheImpl cache.AdviceCache) *InsightService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAdviceCache()
	}
	return &InsightService{
		repo:    repo,
		agg:     agg,
		advisor: advisor,
		cache:   cacheImpl,
		now:     time.Now,
	}
}

// Forecast produces the demand prediction text for the current inventory
// snapshot and sales series. The reply is always displayable.
func (s *InsightService) Forecast(ctx context.Context, force bool) (string, error) {
	items, err := s.repo.Inventory(ctx)
	if err != nil {
		return "", fmt.Errorf("load inventory: %w", err)
	}

	sales, err := s.repo.SalesHistory(ctx)
	if err != nil {
		return "", fmt.Errorf("load sales history: %w", err)
	}

	counts := s.agg.CountByType(items)
	payload := hashPayload(counts, sales)

	if !force {
		if advice, ok := s.cacheGet(ctx, kindForecast, payload); ok {
			return advice, nil
		}
	}

	advice := s.advisor.PredictDemand(ctx, counts, sales)
	s.cacheSet(ctx, kindForecast, payload, advice)
	return advice, nil
}

// IdleAnalysis produces the hoarding-risk read for currently idle customers.
func (s *InsightService) IdleAnalysis(ctx context.Context, force bool) (string, error) {
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return "", fmt.Errorf("load customers: %w", err)
	}

	idle := s.agg.IdleAssets(customers, s.now())
	payload := hashPayload(idle)

	if !force {
		if advice, ok := s.cacheGet(ctx, kindIdle, payload); ok {
			return advice, nil
		}
	}

	advice := s.advisor.AnalyzeIdleAssets(ctx, idle)
	s.cacheSet(ctx, kindIdle, payload, advice)
	return advice, nil
}

// SafetyAdvice answers a free-text customer question.
func (s *InsightService) SafetyAdvice(ctx context.Context, question string) string {
	if advice, ok := s.cacheGet(ctx, kindSafety, question); ok {
		return advice
	}

	advice := s.advisor.SafetyAdvice(ctx, question)
	s.cacheSet(ctx, kindSafety, question, advice)
	return advice
}

func (s *InsightService) cacheGet(ctx context.Context, kind, payload string) (string, bool) {
	advice, ok, err := s.cache.Get(ctx, kind, payload)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("advice cache get failed")
		return "", false
	}
	return advice, ok
}

func (s *InsightService) cacheSet(ctx context.Context, kind, payload, advice string) {
	// Fallback strings are never cached; the next trigger should retry the
	// collaborator instead of replaying an outage.
	if isFallback(advice) {
		return
	}
	if err := s.cache.Set(ctx, kind, payload, advice); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("advice cache set failed")
	}
}

func isFallback(advice string) bool {
	switch advice {
	case ai.FallbackNoCredential, ai.FallbackNoCredentialForecast,
		ai.FallbackForecastFailed, ai.FallbackIdleFailed, ai.FallbackSafetyFailed:
		return true
	}
	return false
}

func hashPayload(parts ...any) string {
	raw, err := json.Marshal(parts)
	if err != nil {
		return ""
	}
	return string(raw)
}
