package service

import (
	"context"
	"testing"
	"time"

	"github.com/lpgflow/backend-go/internal/ai"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository/memory"
)

var seedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*engine.Estimator, *engine.Aggregator, *engine.Classifier) {
	t.Helper()

	est, err := engine.NewEstimator(60)
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}
	agg, err := engine.NewAggregator(est, 45, 80, 50)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	cls, err := engine.NewClassifier(30)
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return est, agg, cls
}

func TestDashboardOverview(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewDashboardService(store, agg)
	svc.now = func() time.Time { return seedNow }

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	c := overview.Fleet.Counts
	if c.Total != 557 {
		t.Errorf("total: got %d, want 557", c.Total)
	}
	if c.Filled != 390 || c.Empty != 150 || c.Defective != 15 || c.WithCustomer != 2 {
		t.Errorf("counts: got %+v", c)
	}

	if len(overview.Regions) != 5 {
		t.Fatalf("regions: got %d, want 5", len(overview.Regions))
	}
	wantHealth := map[string]engine.RegionHealth{
		"R1": engine.RegionHealthy,
		"R2": engine.RegionWatch,
		"R3": engine.RegionHealthy,
		"R4": engine.RegionHoardingRisk,
		"R5": engine.RegionHealthy,
	}
	for _, r := range overview.Regions {
		if r.Health != wantHealth[r.ID] {
			t.Errorf("region %s: got %q, want %q", r.ID, r.Health, wantHealth[r.ID])
		}
	}
}

func TestDashboardIdleAssets(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewDashboardService(store, agg)
	svc.now = func() time.Time { return seedNow }

	idle, err := svc.IdleAssets(context.Background())
	if err != nil {
		t.Fatalf("IdleAssets: %v", err)
	}

	wantIDs := []string{"C002", "C004", "C001"}
	if len(idle) != len(wantIDs) {
		t.Fatalf("idle: got %d entries, want %d (%+v)", len(idle), len(wantIDs), idle)
	}
	for i, want := range wantIDs {
		if idle[i].CustomerID != want {
			t.Errorf("position %d: got %s, want %s", i, idle[i].CustomerID, want)
		}
	}
}

func TestDashboardReconciliation(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewDashboardService(store, agg)

	mismatches, err := svc.Reconciliation(context.Background())
	if err != nil {
		t.Fatalf("Reconciliation: %v", err)
	}

	// C001 holds exactly the two attributed cylinders; the others declare
	// counts with no inventory records behind them.
	for _, m := range mismatches {
		if m.CustomerID == "C001" {
			t.Errorf("C001 should reconcile cleanly, got %+v", m)
		}
	}
	if len(mismatches) != 3 {
		t.Errorf("mismatches: got %d, want 3 (%+v)", len(mismatches), mismatches)
	}
}

func TestCustomerCylinderStatus(t *testing.T) {
	est, _, cls := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewCustomerService(store, est, cls)
	svc.now = func() time.Time { return seedNow }

	view, err := svc.CylinderStatus(context.Background(), "C002")
	if err != nil {
		t.Fatalf("CylinderStatus: %v", err)
	}

	if view.Health.DaysSinceRefill != 71 {
		t.Errorf("DaysSinceRefill: got %d, want 71", view.Health.DaysSinceRefill)
	}
	if view.Health.DaysLeft != -11 {
		t.Errorf("DaysLeft: got %d, want -11", view.Health.DaysLeft)
	}
	if view.Health.Urgency != engine.UrgencyCritical {
		t.Errorf("Urgency: got %q, want critical", view.Health.Urgency)
	}
	if view.RegulatorStatus != engine.ExpiryExpiringSoon {
		t.Errorf("RegulatorStatus: got %q, want expiring_soon", view.RegulatorStatus)
	}
}

func TestCustomerHistorySorted(t *testing.T) {
	est, _, cls := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewCustomerService(store, est, cls)

	txs, err := svc.History(context.Background(), "C001")
	if err != nil {
		t.Fatalf("History: %v", err)
	}

	if len(txs) != 3 {
		t.Fatalf("transactions: got %d, want 3", len(txs))
	}
	for i := 1; i < len(txs); i++ {
		if txs[i-1].Date.Before(txs[i].Date) {
			t.Errorf("history not sorted most recent first at %d", i)
		}
	}
}

func TestSafetyDocumentClassification(t *testing.T) {
	_, _, cls := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewSafetyService(store, cls)
	svc.now = func() time.Time { return seedNow }

	docs, err := svc.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}

	want := map[string]engine.ExpiryState{
		"DOC-001": engine.ExpiryExpiringSoon,
		"DOC-002": engine.ExpiryValid,
		"DOC-003": engine.ExpiryValid,
		"DOC-004": engine.ExpiryExpired,
	}
	if len(docs) != len(want) {
		t.Fatalf("documents: got %d, want %d", len(docs), len(want))
	}
	for _, d := range docs {
		if d.Status != want[d.ID] {
			t.Errorf("%s: got %q, want %q", d.ID, d.Status, want[d.ID])
		}
	}
}

func TestSafetyIncidentTimeline(t *testing.T) {
	_, _, cls := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewSafetyService(store, cls)

	incidents, err := svc.Incidents(context.Background())
	if err != nil {
		t.Fatalf("Incidents: %v", err)
	}

	wantIDs := []string{"INC-003", "INC-002", "INC-001"}
	for i, want := range wantIDs {
		if incidents[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, incidents[i].ID, want)
		}
	}
	if incidents[0].SeverityMeta.Label != "Medium" {
		t.Errorf("severity meta: got %+v", incidents[0].SeverityMeta)
	}
}

// insightGen is a scripted TextGenerator for InsightService tests.
type insightGen struct {
	reply string
	calls int
}

func (g *insightGen) GenerateText(ctx context.Context, prompt string, cfg ai.GenerateConfig) (string, error) {
	g.calls++
	return g.reply, nil
}

// fakeCache is a map-backed AdviceCache.
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, kind, payload string) (string, bool, error) {
	advice, ok := f.entries[kind+"|"+payload]
	return advice, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, kind, payload, advice string) error {
	f.entries[kind+"|"+payload] = advice
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, kind, payload string) error {
	delete(f.entries, kind+"|"+payload)
	return nil
}

func TestForecastUsesCacheUntilForced(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)
	gen := &insightGen{reply: "order 60 domestic"}
	adv := ai.NewAdvisor(gen, 0.2, time.Second)

	svc := NewInsightService(store, agg, adv, newFakeCache())
	svc.now = func() time.Time { return seedNow }
	ctx := context.Background()

	first, err := svc.Forecast(ctx, false)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	second, err := svc.Forecast(ctx, false)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}

	if first != second {
		t.Errorf("replies differ: %q vs %q", first, second)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls: got %d, want 1 (second served from cache)", gen.calls)
	}

	if _, err := svc.Forecast(ctx, true); err != nil {
		t.Fatalf("Forecast(force): %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls after force: got %d, want 2", gen.calls)
	}
}

func TestForecastFallbackIsNotCached(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)
	fc := newFakeCache()

	svc := NewInsightService(store, agg, ai.NewAdvisor(nil, 0.2, time.Second), fc)
	svc.now = func() time.Time { return seedNow }

	advice, err := svc.Forecast(context.Background(), false)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if advice != ai.FallbackNoCredentialForecast {
		t.Errorf("got %q, want %q", advice, ai.FallbackNoCredentialForecast)
	}
	if len(fc.entries) != 0 {
		t.Errorf("fallback was cached: %+v", fc.entries)
	}
}

func TestIdleAnalysisEmbedsIdleCustomers(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)
	gen := &insightGen{reply: "high risk; send reminders"}

	svc := NewInsightService(store, agg, ai.NewAdvisor(gen, 0.2, time.Second), nil)
	svc.now = func() time.Time { return seedNow }

	advice, err := svc.IdleAnalysis(context.Background(), false)
	if err != nil {
		t.Fatalf("IdleAnalysis: %v", err)
	}
	if advice != "high risk; send reminders" {
		t.Errorf("got %q", advice)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls: got %d, want 1", gen.calls)
	}
}

func TestSafetyAdviceNeverErrors(t *testing.T) {
	_, agg, _ := newTestEngine(t)
	store := memory.Seed(seedNow)

	svc := NewInsightService(store, agg, ai.NewAdvisor(nil, 0.2, time.Second), nil)

	if got := svc.SafetyAdvice(context.Background(), "gas smell at night"); got != ai.FallbackNoCredential {
		t.Errorf("got %q, want %q", got, ai.FallbackNoCredential)
	}
}
