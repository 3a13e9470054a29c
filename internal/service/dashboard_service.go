// backend-go/internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository"
)

// Overview is the distributor landing-page aggregate.
type Overview struct {
	Fleet   engine.FleetSummary   `json:"fleet"`
	Regions []engine.RegionReport `json:"regions"`
}

// VehicleView pairs a vehicle with its display metadata.
type VehicleView struct {
	domain.DeliveryVehicle
	Meta domain.StatusMeta `json:"meta"`
}

type DashboardService struct {
	repo repository.DistributorRepository
	agg  *engine.Aggregator
	now  func() time.Time
}

func NewDashboardService(repo repository.DistributorRepository, agg *engine.Aggregator) *DashboardService {
	return &DashboardService{repo: repo, agg: agg, now: time.Now}
}

func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	items, err := s.repo.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	regions, err := s.repo.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}

	return &Overview{
		Fleet:   s.agg.Summarize(items),
		Regions: s.agg.RegionReports(regions),
	}, nil
}

func (s *DashboardService) IdleAssets(ctx context.Context) ([]engine.IdleCustomer, error) {
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	return s.agg.IdleAssets(customers, s.now()), nil
}

func (s *DashboardService) Reconciliation(ctx context.Context) ([]engine.ReconcileEntry, error) {
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	items, err := s.repo.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	return s.agg.Reconcile(customers, items), nil
}

func (s *DashboardService) Vehicles(ctx context.Context) ([]VehicleView, error) {
	vehicles, err := s.repo.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}

	views := make([]VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		views = append(views, VehicleView{
			DeliveryVehicle: v,
			Meta:            domain.VehicleStatusMeta(v.Status),
		})
	}
	return views, nil
}
