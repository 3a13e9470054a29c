// backend-go/internal/ai/prompts.go
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/lpgflow/backend-go/internal/domain"
	"github.com/lpgflow/backend-go/internal/engine"
)

const (
	forecastSystemInstruction = "Provide concise, data-driven inventory advice."

	safetySystemInstruction = "You are a safety expert for LPG (Liquefied Petroleum Gas). " +
		"Answer questions about cylinder expiration, regulator safety, and leak detection. " +
		"Keep answers short and easy to understand for rural customers."
)

func buildForecastPrompt(counts map[domain.CylinderType]int, sales []domain.SalesPoint) string {
	stock, _ := json.Marshal(counts)
	history, _ := json.Marshal(sales)

	return fmt.Sprintf(`You are an expert supply chain analyst for an LPG distribution agency.

Current Inventory Data:
%s

Historical Sales Trend (Last 7 days):
%s

Task:
1. Analyze the consumption pattern.
2. Predict the demand for the next 3 days.
3. Suggest specifically how many new cylinders of each type need to be ordered from the bottling plant to avoid stockouts.
4. Keep the tone professional and actionable.`, stock, history)
}

func buildIdleAssetPrompt(idle []engine.IdleCustomer) string {
	type entry struct {
		Name            string `json:"name"`
		DaysSinceRefill int    `json:"daysSinceRefill"`
	}

	entries := make([]entry, 0, len(idle))
	for _, c := range idle {
		entries = append(entries, entry{Name: c.Name, DaysSinceRefill: c.DaysSinceRefill})
	}
	payload, _ := json.Marshal(entries)

	return fmt.Sprintf(`Analyze these customers who have held LPG cylinders for more than 45 days without a refill. This indicates potential "Invisible Inventory" or hoarding.

Customers: %s

Task:
1. Identify the risk level of lost assets.
2. Draft a polite but firm SMS message template that the distributor can send to these customers to request a status check or return of empty cylinders.`, payload)
}
