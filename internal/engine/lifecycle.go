// backend-go/internal/engine/lifecycle.go
package engine

import (
	"fmt"
	"time"
)

// Urgency classifies how soon a customer cylinder needs a refill.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyDueSoon  Urgency = "due_soon"
	UrgencyNormal   Urgency = "normal"
)

// CylinderHealth is the derived refill view for one customer cylinder.
type CylinderHealth struct {
	DaysSinceRefill int     `json:"days_since_refill"`
	DaysLeft        int     `json:"days_left"` // negative once overdue
	PercentUsed     float64 `json:"percent_used"`
	Urgency         Urgency `json:"urgency"`
}

// Estimator computes cylinder depletion from a last-refill date and the
// assumed usage cycle. All methods are pure; the same inputs always
// produce the same outputs.
type Estimator struct {
	usageCycleDays int
}

func NewEstimator(usageCycleDays int) (*Estimator, error) {
	if usageCycleDays <= 0 {
		return nil, fmt.Errorf("estimator: usage cycle must be positive, got %d", usageCycleDays)
	}
	return &Estimator{usageCycleDays: usageCycleDays}, nil
}

// Assess derives the refill state of a cylinder refilled at lastRefill,
// evaluated at now. A refill date in the future counts as zero elapsed days.
func (e *Estimator) Assess(lastRefill, now time.Time) CylinderHealth {
	days := DaysBetween(lastRefill, now)
	if days < 0 {
		days = 0
	}

	pct := float64(days) / float64(e.usageCycleDays) * 100
	if pct > 100 {
		pct = 100
	}

	daysLeft := e.usageCycleDays - days

	return CylinderHealth{
		DaysSinceRefill: days,
		DaysLeft:        daysLeft,
		PercentUsed:     pct,
		Urgency:         classifyUrgency(daysLeft),
	}
}

// UsageCycleDays returns the configured cycle length.
func (e *Estimator) UsageCycleDays() int {
	return e.usageCycleDays
}

func classifyUrgency(daysLeft int) Urgency {
	switch {
	case daysLeft < 5:
		return UrgencyCritical
	case daysLeft < 10:
		return UrgencyDueSoon
	default:
		return UrgencyNormal
	}
}

// DaysBetween returns the number of whole calendar days from a to b,
// truncated toward zero. Negative when a is after b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
