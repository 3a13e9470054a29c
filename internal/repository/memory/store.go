// backend-go/internal/repository/memory/store.go
package memory

import (
	"context"
	"sync"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/repository"
)

// Store is an in-memory implementation of the repository interfaces. The
// rules engine only ever sees copies, so a Store snapshot behaves like the
// immutable collections a real CRUD layer would serve.
type Store struct {
	mu           sync.RWMutex
	inventory    []domain.InventoryItem
	customers    []domain.CustomerAsset
	vehicles     []domain.DeliveryVehicle
	regions      []domain.RegionStat
	sales        []domain.SalesPoint
	documents    []domain.ComplianceDocument
	incidents    []domain.SafetyIncident
	transactions map[string][]domain.Transaction
}

// Dataset is the full record set a Store holds.
type Dataset struct {
	Inventory    []domain.InventoryItem
	Customers    []domain.CustomerAsset
	Vehicles     []domain.DeliveryVehicle
	Regions      []domain.RegionStat
	Sales        []domain.SalesPoint
	Documents    []domain.ComplianceDocument
	Incidents    []domain.SafetyIncident
	Transactions map[string][]domain.Transaction
}

func NewStore(data Dataset) *Store {
	txs := data.Transactions
	if txs == nil {
		txs = make(map[string][]domain.Transaction)
	}

	return &Store{
		inventory:    data.Inventory,
		customers:    data.Customers,
		vehicles:     data.Vehicles,
		regions:      data.Regions,
		sales:        data.Sales,
		documents:    data.Documents,
		incidents:    data.Incidents,
		transactions: txs,
	}
}

func (s *Store) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.InventoryItem(nil), s.inventory...), nil
}

func (s *Store) Customers(ctx context.Context) ([]domain.CustomerAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CustomerAsset(nil), s.customers...), nil
}

func (s *Store) Vehicles(ctx context.Context) ([]domain.DeliveryVehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DeliveryVehicle(nil), s.vehicles...), nil
}

func (s *Store) Regions(ctx context.Context) ([]domain.RegionStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RegionStat(nil), s.regions...), nil
}

func (s *Store) SalesHistory(ctx context.Context) ([]domain.SalesPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SalesPoint(nil), s.sales...), nil
}

func (s *Store) Documents(ctx context.Context) ([]domain.ComplianceDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ComplianceDocument(nil), s.documents...), nil
}

func (s *Store) Incidents(ctx context.Context) ([]domain.SafetyIncident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SafetyIncident(nil), s.incidents...), nil
}

func (s *Store) Customer(ctx context.Context, id string) (domain.CustomerAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.CustomerID == id {
			return c, nil
		}
	}
	return domain.CustomerAsset{}, repository.ErrNotFound
}

func (s *Store) Transactions(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs, ok := s.transactions[customerID]
	if !ok {
		return []domain.Transaction{}, nil
	}
	return append([]domain.Transaction(nil), txs...), nil
}

var (
	_ repository.DistributorRepository = (*Store)(nil)
	_ repository.SafetyRepository      = (*Store)(nil)
	_ repository.CustomerRepository    = (*Store)(nil)
)
