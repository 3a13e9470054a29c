// backend-go/internal/engine/fleet.go
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
)

// StatusCounts is the per-status breakdown of a cylinder collection.
// Total is the full circulation count (sum of all statuses).
type StatusCounts struct {
	Filled       int `json:"filled"`
	Empty        int `json:"empty"`
	Defective    int `json:"defective"`
	WithCustomer int `json:"with_customer"`
	InTransit    int `json:"in_transit"`
	Total        int `json:"total"`
}

// TypeRow is one row of the type x status chart matrix.
type TypeRow struct {
	Type      domain.CylinderType `json:"type"`
	Label     string              `json:"label"`
	Filled    int                 `json:"filled"`
	Empty     int                 `json:"empty"`
	Defective int                 `json:"defective"`
}

// FleetSummary is the aggregate view of the whole cylinder fleet.
// Skipped counts records excluded for having an unrecognised status or type.
type FleetSummary struct {
	Counts  StatusCounts                         `json:"counts"`
	ByType  []TypeRow                            `json:"by_type"`
	PerType map[domain.CylinderType]StatusCounts `json:"per_type"`
	Skipped int                                  `json:"skipped"`
}

// RegionHealth buckets a region health score for the dashboard indicators.
type RegionHealth string

const (
	RegionHealthy      RegionHealth = "healthy"
	RegionWatch        RegionHealth = "watch"
	RegionHoardingRisk RegionHealth = "hoarding_risk"
)

// RegionReport pairs a region snapshot with its health bucket.
type RegionReport struct {
	domain.RegionStat
	Health RegionHealth `json:"health"`
}

// IdleCustomer is a customer holding a cylinder beyond the return window.
type IdleCustomer struct {
	CustomerID      string `json:"customer_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ActiveCylinders int    `json:"active_cylinders"`
	DaysSinceRefill int    `json:"days_since_refill"`
}

// ReconcileEntry reports a customer whose declared cylinder count disagrees
// with the inventory records attributed to them. Advisory only.
type ReconcileEntry struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Declared   int    `json:"declared"`
	Counted    int    `json:"counted"`
}

// Aggregator reduces inventory, region and customer collections into
// dashboard aggregates. Stateless: re-running on the same collection
// yields identical output.
type Aggregator struct {
	est          *Estimator
	idleAfter    int
	healthyScore int
	watchScore   int
}

func NewAggregator(est *Estimator, idleAfterDays, healthyScore, watchScore int) (*Aggregator, error) {
	if est == nil {
		return nil, fmt.Errorf("aggregator: estimator is required")
	}
	if idleAfterDays <= 0 {
		return nil, fmt.Errorf("aggregator: idle threshold must be positive, got %d", idleAfterDays)
	}
	if watchScore < 0 || healthyScore > 100 || watchScore >= healthyScore {
		return nil, fmt.Errorf("aggregator: score cut-offs must satisfy 0 <= watch < healthy <= 100, got watch=%d healthy=%d", watchScore, healthyScore)
	}

	return &Aggregator{
		est:          est,
		idleAfter:    idleAfterDays,
		healthyScore: healthyScore,
		watchScore:   watchScore,
	}, nil
}

// Summarize counts cylinders by status, overall and per type. Records with
// an unrecognised status or type are excluded and tallied in Skipped rather
// than failing the whole aggregation.
func (a *Aggregator) Summarize(items []domain.InventoryItem) FleetSummary {
	summary := FleetSummary{
		PerType: make(map[domain.CylinderType]StatusCounts),
	}

	for _, item := range items {
		if !domain.KnownCylinderStatus(item.Status) {
			summary.Skipped++
			continue
		}
		if _, ok := domain.ParseCylinderType(string(item.Type)); !ok {
			summary.Skipped++
			continue
		}

		addStatus(&summary.Counts, item.Status)

		perType := summary.PerType[item.Type]
		addStatus(&perType, item.Status)
		summary.PerType[item.Type] = perType
	}

	for _, t := range domain.CylinderTypes() {
		counts := summary.PerType[t]
		summary.ByType = append(summary.ByType, TypeRow{
			Type:      t,
			Label:     domain.CylinderTypeLabel(t),
			Filled:    counts.Filled,
			Empty:     counts.Empty,
			Defective: counts.Defective,
		})
	}

	return summary
}

// CountByType reduces the collection to a count per weight class, the shape
// the demand forecast prompt embeds.
func (a *Aggregator) CountByType(items []domain.InventoryItem) map[domain.CylinderType]int {
	counts := make(map[domain.CylinderType]int)
	for _, item := range items {
		if _, ok := domain.ParseCylinderType(string(item.Type)); !ok {
			continue
		}
		counts[item.Type]++
	}
	return counts
}

// ClassifyRegion buckets a 0-100 health score.
func (a *Aggregator) ClassifyRegion(score int) RegionHealth {
	switch {
	case score > a.healthyScore:
		return RegionHealthy
	case score > a.watchScore:
		return RegionWatch
	default:
		return RegionHoardingRisk
	}
}

// RegionReports pairs each region with its health bucket, keeping input order.
func (a *Aggregator) RegionReports(regions []domain.RegionStat) []RegionReport {
	reports := make([]RegionReport, 0, len(regions))
	for _, r := range regions {
		reports = append(reports, RegionReport{
			RegionStat: r,
			Health:     a.ClassifyRegion(r.HealthScore),
		})
	}
	return reports
}

// IdleAssets finds customers past the expected return window, most overdue
// first. Customers without a recorded refill date are excluded.
func (a *Aggregator) IdleAssets(customers []domain.CustomerAsset, now time.Time) []IdleCustomer {
	idle := make([]IdleCustomer, 0)
	for _, c := range customers {
		if c.LastRefillDate.IsZero() {
			continue
		}

		days := a.est.Assess(c.LastRefillDate, now).DaysSinceRefill
		if days <= a.idleAfter {
			continue
		}

		idle = append(idle, IdleCustomer{
			CustomerID:      c.CustomerID,
			Name:            c.Name,
			Phone:           c.Phone,
			ActiveCylinders: c.ActiveCylinders,
			DaysSinceRefill: days,
		})
	}

	sort.Slice(idle, func(i, j int) bool {
		if idle[i].DaysSinceRefill != idle[j].DaysSinceRefill {
			return idle[i].DaysSinceRefill > idle[j].DaysSinceRefill
		}
		return idle[i].CustomerID < idle[j].CustomerID
	})

	return idle
}

// Reconcile compares each customer's declared cylinder count against the
// with_customer inventory records attributed to them and reports mismatches.
func (a *Aggregator) Reconcile(customers []domain.CustomerAsset, items []domain.InventoryItem) []ReconcileEntry {
	held := make(map[string]int)
	for _, item := range items {
		if item.Status == domain.StatusWithCustomer && item.CustomerID != "" {
			held[item.CustomerID]++
		}
	}

	mismatches := make([]ReconcileEntry, 0)
	for _, c := range customers {
		counted := held[c.CustomerID]
		if counted == c.ActiveCylinders {
			continue
		}
		mismatches = append(mismatches, ReconcileEntry{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Declared:   c.ActiveCylinders,
			Counted:    counted,
		})
	}

	return mismatches
}

func addStatus(counts *StatusCounts, status domain.CylinderStatus) {
	switch status {
	case domain.StatusFilled:
		counts.Filled++
	case domain.StatusEmpty:
		counts.Empty++
	case domain.StatusDefective:
		counts.Defective++
	case domain.StatusWithCustomer:
		counts.WithCustomer++
	case domain.StatusInTransit:
		counts.InTransit++
	}
	counts.Total++
}
