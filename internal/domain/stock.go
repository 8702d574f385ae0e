package domain

import (
	"time"

	"github.com/google/uuid"
)

type MeasureUnit string

const (
	UnitGram       MeasureUnit = "g"
	UnitKilogram   MeasureUnit = "kg"
	UnitMilliliter MeasureUnit = "ml"
	UnitLiter      MeasureUnit = "l"
	UnitPiece      MeasureUnit = "un"
)

// StockItem is an inventory entry. UnitPrice is the price per base unit
// (per kg, per liter or per piece).
type StockItem struct {
	ID        uuid.UUID
	Name      string
	Unit      MeasureUnit
	UnitPrice float64
	Quantity  float64
	ExpiresAt *time.Time
}

// RecipeItem is one ingredient line of a technical sheet.
type RecipeItem struct {
	SheetProductID uuid.UUID
	StockItemID    uuid.UUID
	Quantity       float64
	Unit           MeasureUnit
}
