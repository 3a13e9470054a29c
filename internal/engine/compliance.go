// backend-go/internal/engine/compliance.go
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
)

// ExpiryState buckets a dated document or fitting against its expiry.
type ExpiryState string

const (
	ExpiryValid        ExpiryState = "valid"
	ExpiryExpiringSoon ExpiryState = "expiring_soon"
	ExpiryExpired      ExpiryState = "expired"
)

// DocumentReport pairs a compliance document with its derived expiry state.
type DocumentReport struct {
	domain.ComplianceDocument
	Status       ExpiryState `json:"status"`
	DaysToExpiry int         `json:"days_to_expiry"`
}

// Classifier derives expiry states from date comparisons against a fixed
// warning window.
type Classifier struct {
	windowDays int
}

func NewClassifier(windowDays int) (*Classifier, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("classifier: expiry window must be positive, got %d", windowDays)
	}
	return &Classifier{windowDays: windowDays}, nil
}

// ClassifyExpiry buckets an expiry date relative to now. A document expiring
// exactly at the window boundary is expiring_soon, not valid.
func (c *Classifier) ClassifyExpiry(expiry, now time.Time) ExpiryState {
	if now.After(expiry) {
		return ExpiryExpired
	}
	if DaysBetween(now, expiry) <= c.windowDays {
		return ExpiryExpiringSoon
	}
	return ExpiryValid
}

// ClassifyDocuments derives expiry reports for a document collection.
// Documents without an expiry date are excluded rather than failing the run.
func (c *Classifier) ClassifyDocuments(docs []domain.ComplianceDocument, now time.Time) []DocumentReport {
	reports := make([]DocumentReport, 0, len(docs))
	for _, doc := range docs {
		if doc.ExpiryDate.IsZero() {
			continue
		}
		reports = append(reports, DocumentReport{
			ComplianceDocument: doc,
			Status:             c.ClassifyExpiry(doc.ExpiryDate, now),
			DaysToExpiry:       DaysBetween(now, doc.ExpiryDate),
		})
	}
	return reports
}

// SortIncidents returns a copy ordered most recent first for the timeline.
// The input is never mutated.
func SortIncidents(incidents []domain.SafetyIncident) []domain.SafetyIncident {
	sorted := append([]domain.SafetyIncident(nil), incidents...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}

// SortTransactions returns a copy ordered most recent first for the
// customer history panel.
func SortTransactions(txs []domain.Transaction) []domain.Transaction {
	sorted := append([]domain.Transaction(nil), txs...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}
