package domain

import "github.com/google/uuid"

// GlobalConfig holds the system-wide pricing parameters. There is exactly one.
// Percentage fields are plain percent values (10 means 10%).
type GlobalConfig struct {
	VariableExpensesPct    float64 // DV
	FixedExpensesPct       float64 // DF
	ProfitPct              float64 // L
	InvestmentPct          float64 // I
	HealthyMarginThreshold float64 // below this, theoretical pricing degrades to "atencao"
	PriceProximityFactor   float64 // >1, multiplier over the minimum price
}

// ProductConfig overrides the global percentages for one product.
// A nil field inherits the global value.
type ProductConfig struct {
	ProductID           uuid.UUID
	VariableExpensesPct *float64
	FixedExpensesPct    *float64
	ProfitPct           *float64
	InvestmentPct       *float64
}
