package domain

type ViabilityStatus string

const (
	StatusSaudavel ViabilityStatus = "saudavel"
	StatusAtencao  ViabilityStatus = "atencao"
	StatusInviavel ViabilityStatus = "inviavel"
)

// CalculatedPricing is the full set of indicators derived from a technical
// sheet. It is recomputed on every read and never persisted.
//
// Status inviavel covers two different situations: a percentage configuration
// that cannot price at all (Error carries the reason) and a mathematically
// valid but unprofitable price (Error empty). Callers must look at Error to
// tell them apart.
type CalculatedPricing struct {
	CVU                   float64 // unit variable cost
	PV                    float64 // suggested sale price
	PM                    float64 // minimum survival price
	ProfitPerUnit         float64
	InvestmentPerUnit     float64
	ContributionMargin    float64
	ContributionMarginPct float64

	// nil when the sheet declares no yield; a computed zero is still a value.
	CostPerKg       *float64
	PricePerKg      *float64
	CostPerPortion  *float64
	PricePerPortion *float64

	Status ViabilityStatus
	Error  string
}

// DiscountSimulation is a hypothetical price point derived from an already
// calculated pricing.
type DiscountSimulation struct {
	BasePrice              float64
	DiscountPct            float64
	DiscountedPrice        float64
	MaxDiscountForSurvival float64 // largest discount keeping the price at or above PM
	MaxDiscountForHealthy  float64 // largest discount keeping the price at or above PV
	Status                 ViabilityStatus
}
