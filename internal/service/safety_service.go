// backend-go/internal/service/safety_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository"
)

// IncidentView pairs an incident with its severity display metadata.
type IncidentView struct {
	domain.SafetyIncident
	SeverityMeta domain.StatusMeta `json:"severity_meta"`
}

type SafetyService struct {
	repo repository.SafetyRepository
	cls  *engine.Classifier
	now  func() time.Time
}

func NewSafetyService(repo repository.SafetyRepository, cls *engine.Classifier) *SafetyService {
	return &SafetyService{repo: repo, cls: cls, now: time.Now}
}

func (s *SafetyService) Documents(ctx context.Context) ([]engine.DocumentReport, error) {
	docs, err := s.repo.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	return s.cls.ClassifyDocuments(docs, s.now()), nil
}

func (s *SafetyService) Incidents(ctx context.Context) ([]IncidentView, error) {
	incidents, err := s.repo.Incidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load incidents: %w", err)
	}

	sorted := engine.SortIncidents(incidents)
	views := make([]IncidentView, 0, len(sorted))
	for _, inc := range sorted {
		views = append(views, IncidentView{
			SafetyIncident: inc,
			SeverityMeta:   domain.SeverityMeta(inc.Severity),
		})
	}
	return views, nil
}
