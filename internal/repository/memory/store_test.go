package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/repository"
)

func TestSeedInventoryShape(t *testing.T) {
	store := Seed(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	items, err := store.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	if len(items) != 557 {
		t.Errorf("inventory size: got %d, want 557", len(items))
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			t.Errorf("duplicate asset id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	store := Seed(time.Now())

	first, err := store.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	first[0].Status = "melted"

	second, err := store.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if second[0].Status == "melted" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestCustomerLookup(t *testing.T) {
	store := Seed(time.Now())
	ctx := context.Background()

	c, err := store.Customer(ctx, "C001")
	if err != nil {
		t.Fatalf("Customer(C001): %v", err)
	}
	if c.Name != "Amit Sharma" {
		t.Errorf("name: got %q, want Amit Sharma", c.Name)
	}

	if _, err := store.Customer(ctx, "C999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Customer(C999): got %v, want ErrNotFound", err)
	}
}

func TestTransactionsForUnknownCustomer(t *testing.T) {
	store := Seed(time.Now())

	txs, err := store.Transactions(context.Background(), "C999")
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("got %d transactions, want 0", len(txs))
	}
}

func TestSeedAttributesHeldAssets(t *testing.T) {
	store := Seed(time.Now())

	items, err := store.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	held := 0
	for _, item := range items {
		if item.Status == domain.StatusWithCustomer && item.CustomerID == "C001" {
			held++
		}
	}
	if held != 2 {
		t.Errorf("with_customer items for C001: got %d, want 2", held)
	}
}
