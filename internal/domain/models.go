// backend-go/internal/domain/models.go
package domain

import "time"

// CylinderType is a nominal weight class of an LPG cylinder.
type CylinderType string

const (
	TypeDomestic   CylinderType = "domestic"   // 14.2kg household
	TypeCommercial CylinderType = "commercial" // 19kg hotels/restaurants
	TypeIndustrial CylinderType = "industrial" // 47.5kg industrial
)

// CylinderStatus tracks where a physical asset sits in its fill cycle.
type CylinderStatus string

const (
	StatusFilled       CylinderStatus = "filled"
	StatusEmpty        CylinderStatus = "empty"
	StatusDefective    CylinderStatus = "defective"
	StatusWithCustomer CylinderStatus = "with_customer"
	StatusInTransit    CylinderStatus = "in_transit"
)

// InventoryItem is one physical cylinder. ID identifies the asset across its
// whole lifecycle (filled -> with_customer -> empty -> filled, or defective).
type InventoryItem struct {
	ID          string         `json:"id"`
	Type        CylinderType   `json:"type"`
	Status      CylinderStatus `json:"status"`
	LastUpdated time.Time      `json:"last_updated"`
	ExpiryDate  time.Time      `json:"expiry_date"` // hydro-test expiry
	Location    string         `json:"location"`
	CustomerID  string         `json:"customer_id,omitempty"` // set while with_customer
}

// CustomerAsset is a customer account with the cylinders it currently holds.
type CustomerAsset struct {
	CustomerID          string    `json:"customer_id"`
	Name                string    `json:"name"`
	ActiveCylinders     int       `json:"active_cylinders"`
	LastRefillDate      time.Time `json:"last_refill_date"`
	RegulatorExpiryDate time.Time `json:"regulator_expiry_date"`
	SafetyCheckDue      bool      `json:"safety_check_due"`
	Address             string    `json:"address"`
	Credits             int       `json:"credits"`
	Phone               string    `json:"phone"`
}

// VehicleStatus is the dispatch state of a delivery vehicle.
type VehicleStatus string

const (
	VehicleDelivering VehicleStatus = "delivering"
	VehicleReturning  VehicleStatus = "returning"
	VehicleIdle       VehicleStatus = "idle"
)

type DeliveryVehicle struct {
	ID          string        `json:"id"`
	DriverName  string        `json:"driver_name"`
	PlateNumber string        `json:"plate_number"`
	Status      VehicleStatus `json:"status"`
	Location    string        `json:"location"`
	Load        int           `json:"load"` // percent of capacity
	ETA         string        `json:"eta"`  // free text, "-" when idle
}

// RegionStat is a per-region turnover snapshot.
type RegionStat struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TotalDistributed int    `json:"total_distributed"`
	IdleCount        int    `json:"idle_count"`
	HealthScore      int    `json:"health_score"` // 0-100, higher is better
}

type DocumentType string

const (
	DocLicense     DocumentType = "license"
	DocCertificate DocumentType = "certificate"
	DocAuditReport DocumentType = "audit_report"
	DocInsurance   DocumentType = "insurance"
)

type ComplianceDocument struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       DocumentType `json:"type"`
	IssueDate  time.Time    `json:"issue_date"`
	ExpiryDate time.Time    `json:"expiry_date"`
	URL        string       `json:"url,omitempty"`
}

type IncidentType string

const (
	IncidentLeakage  IncidentType = "leakage"
	IncidentFire     IncidentType = "fire"
	IncidentAccident IncidentType = "accident"
	IncidentNearMiss IncidentType = "near_miss"
)

type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "open"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
)

type SafetyIncident struct {
	ID          string           `json:"id"`
	Date        time.Time        `json:"date"`
	Type        IncidentType     `json:"type"`
	Severity    IncidentSeverity `json:"severity"`
	Description string           `json:"description"`
	Status      IncidentStatus   `json:"status"`
	Location    string           `json:"location"`
	ReportedBy  string           `json:"reported_by"`
}

type TransactionType string

const (
	TxRefill  TransactionType = "refill"
	TxReturn  TransactionType = "return"
	TxService TransactionType = "service"
)

type Transaction struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Type   TransactionType `json:"type"`
	Amount int             `json:"amount"`
	Status string          `json:"status"` // completed / pending
}

// SalesPoint is one day of the historical sales series fed to the forecast.
type SalesPoint struct {
	Day        string `json:"day"`
	Domestic   int    `json:"domestic"`
	Commercial int    `json:"commercial"`
}
