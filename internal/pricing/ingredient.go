package pricing

import "github.com/lucashmelo/precifica/internal/domain"

// CostLine pairs a stock item's base-unit price with a recipe quantity.
type CostLine struct {
	UnitPrice float64
	Quantity  float64
	Unit      domain.MeasureUnit
}

// IngredientCost converts a recipe quantity to the stock item's base unit and
// prices it. Items without a positive price cost nothing.
func IngredientCost(unitPrice, qty float64, unit domain.MeasureUnit) float64 {
	if unitPrice <= 0 {
		return 0
	}
	switch unit {
	case domain.UnitGram, domain.UnitMilliliter:
		qty /= 1000
	}
	return unitPrice * qty
}

// SheetCMV sums the ingredient line costs of a recipe-based sheet.
func SheetCMV(lines []CostLine) float64 {
	total := 0.0
	for _, ln := range lines {
		total += IngredientCost(ln.UnitPrice, ln.Quantity, ln.Unit)
	}
	return total
}
