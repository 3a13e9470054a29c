// backend-go/internal/repository/memory/seed.go
package memory

import (
	"fmt"
	"time"

	"github.com/lpgflow/backend-go/internal/domain"
)

// Seed builds a Store populated with the demo distributor dataset. Dates are
// anchored to now so the derived classifications stay meaningful.
func Seed(now time.Time) *Store {
	return NewStore(Dataset{
		Inventory:    seedInventory(now),
		Customers:    seedCustomers(now),
		Vehicles:     seedVehicles(),
		Regions:      seedRegions(),
		Sales:        seedSales(),
		Documents:    seedDocuments(now),
		Incidents:    seedIncidents(now),
		Transactions: seedTransactions(now),
	})
}

func batch(prefix string, start, n int, typ domain.CylinderType, status domain.CylinderStatus, expiry time.Time, location string, now time.Time) []domain.InventoryItem {
	items := make([]domain.InventoryItem, n)
	for i := range items {
		items[i] = domain.InventoryItem{
			ID:          fmt.Sprintf("%s-%d", prefix, start+i),
			Type:        typ,
			Status:      status,
			LastUpdated: now.AddDate(0, 0, -1),
			ExpiryDate:  expiry,
			Location:    location,
		}
	}
	return items
}

func seedInventory(now time.Time) []domain.InventoryItem {
	var items []domain.InventoryItem
	items = append(items, batch("CYL", 1000, 320, domain.TypeDomestic, domain.StatusFilled, now.AddDate(4, 0, 0), "Warehouse A", now)...)
	items = append(items, batch("CYL", 2000, 145, domain.TypeDomestic, domain.StatusEmpty, now.AddDate(4, 0, 0), "Warehouse B", now)...)
	items = append(items, batch("CYL", 3000, 50, domain.TypeCommercial, domain.StatusFilled, now.AddDate(2, 6, 0), "Warehouse A", now)...)
	items = append(items, batch("CYL", 4000, 15, domain.TypeDomestic, domain.StatusDefective, now.AddDate(-1, 0, 0), "Repair Bay", now)...)
	items = append(items, batch("CYL", 5000, 20, domain.TypeIndustrial, domain.StatusFilled, now.AddDate(3, 9, 0), "Warehouse C", now)...)
	items = append(items, batch("CYL", 6000, 5, domain.TypeIndustrial, domain.StatusEmpty, now.AddDate(3, 9, 0), "Warehouse C", now)...)

	// Held assets attributed to the seeded customers.
	held := batch("CYL", 7000, 2, domain.TypeDomestic, domain.StatusWithCustomer, now.AddDate(4, 0, 0), "Customer Site", now)
	for i := range held {
		held[i].CustomerID = "C001"
	}
	items = append(items, held...)

	return items
}

func seedCustomers(now time.Time) []domain.CustomerAsset {
	return []domain.CustomerAsset{
		{
			CustomerID:          "C001",
			Name:                "Amit Sharma",
			ActiveCylinders:     2,
			LastRefillDate:      now.AddDate(0, 0, -52),
			RegulatorExpiryDate: now.AddDate(1, 2, 0),
			SafetyCheckDue:      false,
			Address:             "Sector 4, Rohini, Delhi",
			Credits:             65,
			Phone:               "+91 98765 43210",
		},
		{
			CustomerID:          "C002",
			Name:                "Priya Patel",
			ActiveCylinders:     1,
			LastRefillDate:      now.AddDate(0, 0, -71),
			RegulatorExpiryDate: now.AddDate(0, 0, 25),
			SafetyCheckDue:      true,
			Address:             "East Market, Lane 3",
			Credits:             20,
			Phone:               "+91 98200 11223",
		},
		{
			CustomerID:          "C003",
			Name:                "Hotel Annapurna",
			ActiveCylinders:     4,
			LastRefillDate:      now.AddDate(0, 0, -12),
			RegulatorExpiryDate: now.AddDate(2, 0, 0),
			SafetyCheckDue:      false,
			Address:             "Station Road, Old City",
			Credits:             140,
			Phone:               "+91 98111 55667",
		},
		{
			CustomerID:          "C004",
			Name:                "Ravi Iyer",
			ActiveCylinders:     1,
			LastRefillDate:      now.AddDate(0, 0, -58),
			RegulatorExpiryDate: now.AddDate(0, 0, -10),
			SafetyCheckDue:      true,
			Address:             "West Suburbs, Block F",
			Credits:             5,
			Phone:               "+91 99870 22334",
		},
	}
}

func seedVehicles() []domain.DeliveryVehicle {
	return []domain.DeliveryVehicle{
		{ID: "V-01", DriverName: "Rajesh Kumar", PlateNumber: "MH-12-AB-1234", Status: domain.VehicleDelivering, Location: "Sector 4, North", Load: 85, ETA: "15 mins"},
		{ID: "V-02", DriverName: "Sunil Singh", PlateNumber: "MH-12-XY-9876", Status: domain.VehicleReturning, Location: "Main Highway", Load: 10, ETA: "45 mins"},
		{ID: "V-03", DriverName: "Vikram Malhotra", PlateNumber: "MH-14-ZZ-5555", Status: domain.VehicleDelivering, Location: "Industrial Area", Load: 60, ETA: "30 mins"},
		{ID: "V-04", DriverName: "Amit Patel", PlateNumber: "MH-14-AA-1111", Status: domain.VehicleIdle, Location: "Depot", Load: 0, ETA: "-"},
		{ID: "V-05", DriverName: "Suresh Reddy", PlateNumber: "MH-12-BB-2222", Status: domain.VehicleDelivering, Location: "East Market", Load: 45, ETA: "1 hour"},
	}
}

func seedRegions() []domain.RegionStat {
	return []domain.RegionStat{
		{ID: "R1", Name: "North Zone", TotalDistributed: 1200, IdleCount: 45, HealthScore: 92},
		{ID: "R2", Name: "East Market", TotalDistributed: 850, IdleCount: 120, HealthScore: 65},
		{ID: "R3", Name: "Ind. Sector", TotalDistributed: 2000, IdleCount: 80, HealthScore: 88},
		{ID: "R4", Name: "Old City", TotalDistributed: 1500, IdleCount: 300, HealthScore: 45},
		{ID: "R5", Name: "West Suburbs", TotalDistributed: 900, IdleCount: 20, HealthScore: 95},
	}
}

func seedSales() []domain.SalesPoint {
	return []domain.SalesPoint{
		{Day: "Mon", Domestic: 145, Commercial: 42},
		{Day: "Tue", Domestic: 152, Commercial: 38},
		{Day: "Wed", Domestic: 148, Commercial: 45},
		{Day: "Thu", Domestic: 160, Commercial: 35},
		{Day: "Fri", Domestic: 175, Commercial: 50},
		{Day: "Sat", Domestic: 210, Commercial: 65},
		{Day: "Sun", Domestic: 195, Commercial: 55},
	}
}

func seedDocuments(now time.Time) []domain.ComplianceDocument {
	return []domain.ComplianceDocument{
		{ID: "DOC-001", Title: "PESO Storage License", Type: domain.DocLicense, IssueDate: now.AddDate(-1, 0, 0), ExpiryDate: now.AddDate(0, 0, 21)},
		{ID: "DOC-002", Title: "Fire Safety Certificate", Type: domain.DocCertificate, IssueDate: now.AddDate(0, -4, 0), ExpiryDate: now.AddDate(0, 8, 0)},
		{ID: "DOC-003", Title: "Vehicle Insurance Policy (Fleet)", Type: domain.DocInsurance, IssueDate: now.AddDate(0, -7, 0), ExpiryDate: now.AddDate(0, 5, 0)},
		{ID: "DOC-004", Title: "Annual Compliance Audit", Type: domain.DocAuditReport, IssueDate: now.AddDate(-2, 0, 0), ExpiryDate: now.AddDate(0, 0, -40)},
	}
}

func seedIncidents(now time.Time) []domain.SafetyIncident {
	return []domain.SafetyIncident{
		{
			ID:          "INC-001",
			Date:        now.AddDate(0, 0, -14),
			Type:        domain.IncidentLeakage,
			Severity:    domain.SeverityHigh,
			Description: "Minor valve leakage detected during pre-delivery check.",
			Status:      domain.IncidentResolved,
			Location:    "Warehouse A",
			ReportedBy:  "Supervisor Sharma",
		},
		{
			ID:          "INC-002",
			Date:        now.AddDate(0, 0, -9),
			Type:        domain.IncidentNearMiss,
			Severity:    domain.SeverityLow,
			Description: "Cylinder stack unstable, corrected immediately.",
			Status:      domain.IncidentResolved,
			Location:    "Loading Bay 2",
			ReportedBy:  "Operator Singh",
		},
		{
			ID:          "INC-003",
			Date:        now.AddDate(0, 0, -2),
			Type:        domain.IncidentAccident,
			Severity:    domain.SeverityMedium,
			Description: "Delivery vehicle minor scrape in narrow lane.",
			Status:      domain.IncidentInvestigating,
			Location:    "Sector 4",
			ReportedBy:  "Driver Rajesh",
		},
	}
}

func seedTransactions(now time.Time) map[string][]domain.Transaction {
	return map[string][]domain.Transaction{
		"C001": {
			{ID: "TX-101", Date: now.AddDate(0, 0, -52), Type: domain.TxRefill, Amount: 1103, Status: "completed"},
			{ID: "TX-100", Date: now.AddDate(0, -4, 0), Type: domain.TxRefill, Amount: 1050, Status: "completed"},
			{ID: "TX-099", Date: now.AddDate(0, -8, 0), Type: domain.TxService, Amount: 250, Status: "completed"},
		},
		"C002": {
			{ID: "TX-090", Date: now.AddDate(0, 0, -71), Type: domain.TxRefill, Amount: 1103, Status: "completed"},
		},
	}
}
