package domain

import "strings"

// Display metadata for enum values. Handlers and the UI look these up
// instead of switching over variants, so adding a status is a table edit.
type StatusMeta struct {
	Label string `json:"label"`
	Badge string `json:"badge"` // UI colour key
}

var cylinderTypeLabels = map[CylinderType]string{
	TypeDomestic:   "14.2kg Domestic",
	TypeCommercial: "19kg Commercial",
	TypeIndustrial: "47.5kg Industrial",
}

var cylinderTypeCodes = map[string]CylinderType{
	"domestic":   TypeDomestic,
	"commercial": TypeCommercial,
	"industrial": TypeIndustrial,
}

var cylinderStatusMeta = map[CylinderStatus]StatusMeta{
	StatusFilled:       {Label: "Filled", Badge: "green"},
	StatusEmpty:        {Label: "Empty", Badge: "slate"},
	StatusDefective:    {Label: "Defective", Badge: "red"},
	StatusWithCustomer: {Label: "With Customer", Badge: "blue"},
	StatusInTransit:    {Label: "In Transit", Badge: "amber"},
}

var vehicleStatusMeta = map[VehicleStatus]StatusMeta{
	VehicleDelivering: {Label: "Delivering", Badge: "green"},
	VehicleReturning:  {Label: "Returning", Badge: "amber"},
	VehicleIdle:       {Label: "Idle", Badge: "slate"},
}

var severityMeta = map[IncidentSeverity]StatusMeta{
	SeverityLow:      {Label: "Low", Badge: "slate"},
	SeverityMedium:   {Label: "Medium", Badge: "amber"},
	SeverityHigh:     {Label: "High", Badge: "orange"},
	SeverityCritical: {Label: "Critical", Badge: "red"},
}

// CylinderTypeLabel returns the human-readable weight-class label.
func CylinderTypeLabel(t CylinderType) string {
	if label, ok := cylinderTypeLabels[t]; ok {
		return label
	}

	return "Unknown"
}

// ParseCylinderType returns the type for a given code (case-insensitive).
func ParseCylinderType(code string) (CylinderType, bool) {
	t, ok := cylinderTypeCodes[strings.ToLower(strings.TrimSpace(code))]

	return t, ok
}

// KnownCylinderStatus reports whether s is a recognised lifecycle status.
func KnownCylinderStatus(s CylinderStatus) bool {
	_, ok := cylinderStatusMeta[s]
	return ok
}

// CylinderStatusMeta returns display metadata for a lifecycle status.
func CylinderStatusMeta(s CylinderStatus) StatusMeta {
	if meta, ok := cylinderStatusMeta[s]; ok {
		return meta
	}

	return StatusMeta{Label: "Unknown", Badge: "slate"}
}

// VehicleStatusMeta returns display metadata for a dispatch status.
func VehicleStatusMeta(s VehicleStatus) StatusMeta {
	if meta, ok := vehicleStatusMeta[s]; ok {
		return meta
	}

	return StatusMeta{Label: "Unknown", Badge: "slate"}
}

// SeverityMeta returns display metadata for an incident severity.
func SeverityMeta(s IncidentSeverity) StatusMeta {
	if meta, ok := severityMeta[s]; ok {
		return meta
	}

	return StatusMeta{Label: "Unknown", Badge: "slate"}
}

// CylinderTypes lists the supported weight classes in display order.
func CylinderTypes() []CylinderType {
	return []CylinderType{TypeDomestic, TypeCommercial, TypeIndustrial}
}
