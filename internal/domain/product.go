package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TechnicalSheet is the costing record of a product. A product has at most one
// active sheet; it is saved wholesale by the catalog owner and never mutated here.
type TechnicalSheet struct {
	ProductID        uuid.UUID
	CMV              float64 // ingredient cost per unit produced
	LaborCostPerHour float64
	PrepTimeMinutes  int
	PackagingCost    float64
	YieldKg          float64 // 0 = not applicable
	YieldPortions    float64 // 0 = not applicable
	SalePrice        float64 // 0 = not set, status falls back to the theoretical price
	UpdatedAt        time.Time
}
