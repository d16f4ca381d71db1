package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DishRecord is one structurally-extracted dish from upstream menu analysis.
//
// Records are immutable once produced: the annotation pipeline reads them but
// never writes back. Price stays a string because it is a formatted currency
// amount owned by the upstream extractor, not a number this subsystem does
// arithmetic on.
type DishRecord struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            string  `json:"price"`
	EstimatedCost    float64 `json:"estimated_cost"`
	MarginPercentage int     `json:"margin_percentage"`
	Justification    string  `json:"justification"`
}

// LoadDishes parses a JSON array of dish records.
//
// Validation applied per record:
//   - Name is required; a record with an empty name is rejected.
//   - MarginPercentage is clamped into 0..100.
//   - A missing ID is assigned a fresh UUID so every record is addressable.
//
// The input order is preserved; it determines matching and rendering order
// downstream.
func LoadDishes(data []byte) ([]DishRecord, error) {
	var dishes []DishRecord
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, fmt.Errorf("failed to parse dish list: %w", err)
	}

	for i := range dishes {
		if strings.TrimSpace(dishes[i].Name) == "" {
			return nil, fmt.Errorf("dish at index %d has no name", i)
		}
		if dishes[i].MarginPercentage < 0 {
			dishes[i].MarginPercentage = 0
		}
		if dishes[i].MarginPercentage > 100 {
			dishes[i].MarginPercentage = 100
		}
		if dishes[i].ID == "" {
			dishes[i].ID = uuid.NewString()
		}
	}

	return dishes, nil
}
