package engine

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestEstimator(t *testing.T, cycle int) *Estimator {
	t.Helper()
	est, err := NewEstimator(cycle)
	if err != nil {
		t.Fatalf("NewEstimator(%d): %v", cycle, err)
	}
	return est
}

func refilledDaysAgo(days int) time.Time {
	return testNow.Add(-time.Duration(days) * 24 * time.Hour)
}

func TestNewEstimatorRejectsNonPositiveCycle(t *testing.T) {
	for _, cycle := range []int{0, -1, -60} {
		if _, err := NewEstimator(cycle); err == nil {
			t.Errorf("NewEstimator(%d): expected error, got nil", cycle)
		}
	}
}

func TestAssessUrgencyBoundaries(t *testing.T) {
	est := newTestEstimator(t, 60)

	tests := []struct {
		daysLeft int
		want     Urgency
	}{
		{4, UrgencyCritical},
		{5, UrgencyDueSoon},
		{9, UrgencyDueSoon},
		{10, UrgencyNormal},
		{-10, UrgencyCritical},
		{60, UrgencyNormal},
	}

	for _, tc := range tests {
		health := est.Assess(refilledDaysAgo(60-tc.daysLeft), testNow)
		if health.DaysLeft != tc.daysLeft {
			t.Errorf("daysLeft: got %d, want %d", health.DaysLeft, tc.daysLeft)
		}
		if health.Urgency != tc.want {
			t.Errorf("daysLeft=%d: got urgency %q, want %q", tc.daysLeft, health.Urgency, tc.want)
		}
	}
}

func TestAssessOverdueCustomer(t *testing.T) {
	est := newTestEstimator(t, 60)

	health := est.Assess(refilledDaysAgo(70), testNow)

	if health.DaysSinceRefill != 70 {
		t.Errorf("DaysSinceRefill: got %d, want 70", health.DaysSinceRefill)
	}
	if health.DaysLeft != -10 {
		t.Errorf("DaysLeft: got %d, want -10", health.DaysLeft)
	}
	if health.PercentUsed != 100 {
		t.Errorf("PercentUsed: got %v, want 100 (clamped)", health.PercentUsed)
	}
	if health.Urgency != UrgencyCritical {
		t.Errorf("Urgency: got %q, want %q", health.Urgency, UrgencyCritical)
	}
}

func TestAssessFutureRefillClampsToZero(t *testing.T) {
	est := newTestEstimator(t, 60)

	health := est.Assess(testNow.Add(48*time.Hour), testNow)

	if health.DaysSinceRefill != 0 {
		t.Errorf("DaysSinceRefill: got %d, want 0", health.DaysSinceRefill)
	}
	if health.DaysLeft != 60 {
		t.Errorf("DaysLeft: got %d, want 60", health.DaysLeft)
	}
	if health.PercentUsed != 0 {
		t.Errorf("PercentUsed: got %v, want 0", health.PercentUsed)
	}
	if health.Urgency != UrgencyNormal {
		t.Errorf("Urgency: got %q, want %q", health.Urgency, UrgencyNormal)
	}
}

func TestAssessInvariants(t *testing.T) {
	est := newTestEstimator(t, 60)

	for days := 0; days <= 120; days += 7 {
		health := est.Assess(refilledDaysAgo(days), testNow)

		if health.DaysLeft != 60-health.DaysSinceRefill {
			t.Errorf("days=%d: DaysLeft %d != cycle - DaysSinceRefill %d", days, health.DaysLeft, 60-health.DaysSinceRefill)
		}
		if health.PercentUsed < 0 || health.PercentUsed > 100 {
			t.Errorf("days=%d: PercentUsed %v out of [0,100]", days, health.PercentUsed)
		}
	}
}

func TestAssessIsPure(t *testing.T) {
	est := newTestEstimator(t, 60)
	refill := refilledDaysAgo(33)

	first := est.Assess(refill, testNow)
	for i := 0; i < 5; i++ {
		if got := est.Assess(refill, testNow); got != first {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestAssessPartialDayTruncates(t *testing.T) {
	est := newTestEstimator(t, 60)

	// 10 days and 20 hours ago still counts as 10 whole days.
	health := est.Assess(testNow.Add(-(10*24+20)*time.Hour), testNow)
	if health.DaysSinceRefill != 10 {
		t.Errorf("DaysSinceRefill: got %d, want 10", health.DaysSinceRefill)
	}
}
