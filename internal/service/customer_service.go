// backend-go/internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository"
)

// CylinderStatusView is the customer dashboard's refill card.
type CylinderStatusView struct {
	CustomerID      string                `json:"customer_id"`
	Name            string                `json:"name"`
	ActiveCylinders int                   `json:"active_cylinders"`
	Credits         int                   `json:"credits"`
	Health          engine.CylinderHealth `json:"health"`
	RegulatorStatus engine.ExpiryState    `json:"regulator_status"`
	SafetyCheckDue  bool                  `json:"safety_check_due"`
}

type CustomerService struct {
	repo repository.CustomerRepository
	est  *engine.Estimator
	cls  *engine.Classifier
	now  func() time.Time
}

func NewCustomerService(repo repository.CustomerRepository, est *engine.Estimator, cls *engine.Classifier) *CustomerService {
	return &CustomerService{repo: repo, est: est, cls: cls, now: time.Now}
}

func (s *CustomerService) CylinderStatus(ctx context.Context, customerID string) (*CylinderStatusView, error) {
	c, err := s.repo.Customer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	return &CylinderStatusView{
		CustomerID:      c.CustomerID,
		Name:            c.Name,
		ActiveCylinders: c.ActiveCylinders,
		Credits:         c.Credits,
		Health:          s.est.Assess(c.LastRefillDate, now),
		RegulatorStatus: s.cls.ClassifyExpiry(c.RegulatorExpiryDate, now),
		SafetyCheckDue:  c.SafetyCheckDue,
	}, nil
}

func (s *CustomerService) History(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	txs, err := s.repo.Transactions(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	return engine.SortTransactions(txs), nil
}
