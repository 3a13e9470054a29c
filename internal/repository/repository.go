// backend-go/internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/lpgflow/backend-go/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DistributorRepository serves the collections behind the distributor
// dashboard. Implementations return snapshots; callers never see shared
// mutable state.
type DistributorRepository interface {
	Inventory(ctx context.Context) ([]domain.InventoryItem, error)
	Customers(ctx context.Context) ([]domain.CustomerAsset, error)
	Vehicles(ctx context.Context) ([]domain.DeliveryVehicle, error)
	Regions(ctx context.Context) ([]domain.RegionStat, error)
	SalesHistory(ctx context.Context) ([]domain.SalesPoint, error)
}

// SafetyRepository serves the compliance and incident logs.
type SafetyRepository interface {
	Documents(ctx context.Context) ([]domain.ComplianceDocument, error)
	Incidents(ctx context.Context) ([]domain.SafetyIncident, error)
}

// CustomerRepository serves single customer accounts and their history.
type CustomerRepository interface {
	Customer(ctx context.Context, id string) (domain.CustomerAsset, error)
	Transactions(ctx context.Context, customerID string) ([]domain.Transaction, error)
}
