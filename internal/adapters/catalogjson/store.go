// Package catalogjson serves the catalog, config and stock ports from a single
// JSON document. It is read-only: the document is owned and persisted elsewhere.
package catalogjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lucashmelo/precifica/internal/domain"
)

const (
	defaultProximityFactor = 1.05
	defaultMarginThreshold = 50
)

type document struct {
	GlobalConfig globalConfigDTO `json:"global_config" validate:"required"`
	Products     []productDTO    `json:"products" validate:"dive"`
	StockItems   []stockItemDTO  `json:"stock_items" validate:"dive"`
}

type globalConfigDTO struct {
	VariableExpensesPct    float64  `json:"variable_expenses_pct" validate:"gte=0"`
	FixedExpensesPct       float64  `json:"fixed_expenses_pct" validate:"gte=0"`
	ProfitPct              float64  `json:"profit_pct" validate:"gte=0"`
	InvestmentPct          float64  `json:"investment_pct" validate:"gte=0"`
	HealthyMarginThreshold *float64 `json:"healthy_margin_threshold" validate:"omitempty,gte=0"`
	PriceProximityFactor   *float64 `json:"price_proximity_factor" validate:"omitempty,gt=1"`
}

type productDTO struct {
	ID       uuid.UUID         `json:"id" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Category string            `json:"category"`
	Active   *bool             `json:"active"`
	Sheet    *sheetDTO         `json:"sheet" validate:"omitempty"`
	Config   *productConfigDTO `json:"config" validate:"omitempty"`
	Recipe   []recipeItemDTO   `json:"recipe" validate:"dive"`
}

type sheetDTO struct {
	CMV              float64 `json:"cmv" validate:"gte=0"`
	LaborCostPerHour float64 `json:"labor_cost_per_hour" validate:"gte=0"`
	PrepTimeMinutes  int     `json:"prep_time_minutes" validate:"gte=0"`
	PackagingCost    float64 `json:"packaging_cost" validate:"gte=0"`
	YieldKg          float64 `json:"yield_kg" validate:"gte=0"`
	YieldPortions    float64 `json:"yield_portions" validate:"gte=0"`
	SalePrice        float64 `json:"sale_price" validate:"gte=0"`
}

type productConfigDTO struct {
	VariableExpensesPct *float64 `json:"variable_expenses_pct" validate:"omitempty,gte=0"`
	FixedExpensesPct    *float64 `json:"fixed_expenses_pct" validate:"omitempty,gte=0"`
	ProfitPct           *float64 `json:"profit_pct" validate:"omitempty,gte=0"`
	InvestmentPct       *float64 `json:"investment_pct" validate:"omitempty,gte=0"`
}

type recipeItemDTO struct {
	StockItemID uuid.UUID          `json:"stock_item_id" validate:"required"`
	Quantity    float64            `json:"quantity" validate:"gt=0"`
	Unit        domain.MeasureUnit `json:"unit" validate:"oneof=g kg ml l un"`
}

type stockItemDTO struct {
	ID        uuid.UUID          `json:"id" validate:"required"`
	Name      string             `json:"name" validate:"required"`
	Unit      domain.MeasureUnit `json:"unit" validate:"oneof=kg l un"`
	UnitPrice float64            `json:"unit_price" validate:"gte=0"`
	Quantity  float64            `json:"quantity" validate:"gte=0"`
	ExpiresAt *time.Time         `json:"expires_at"`
}

type Store struct {
	global    domain.GlobalConfig
	products  []domain.Product
	sheets    map[uuid.UUID]domain.TechnicalSheet
	overrides map[uuid.UUID]domain.ProductConfig
	recipes   map[uuid.UUID][]domain.RecipeItem
	stock     map[uuid.UUID]domain.StockItem
}

func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrindo catálogo: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Store, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decodificando catálogo: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("catálogo inválido: %w", err)
	}

	s := &Store{
		sheets:    make(map[uuid.UUID]domain.TechnicalSheet),
		overrides: make(map[uuid.UUID]domain.ProductConfig),
		recipes:   make(map[uuid.UUID][]domain.RecipeItem),
		stock:     make(map[uuid.UUID]domain.StockItem),
	}

	s.global = domain.GlobalConfig{
		VariableExpensesPct:    doc.GlobalConfig.VariableExpensesPct,
		FixedExpensesPct:       doc.GlobalConfig.FixedExpensesPct,
		ProfitPct:              doc.GlobalConfig.ProfitPct,
		InvestmentPct:          doc.GlobalConfig.InvestmentPct,
		HealthyMarginThreshold: defaultMarginThreshold,
		PriceProximityFactor:   defaultProximityFactor,
	}
	if doc.GlobalConfig.HealthyMarginThreshold != nil {
		s.global.HealthyMarginThreshold = *doc.GlobalConfig.HealthyMarginThreshold
	}
	if doc.GlobalConfig.PriceProximityFactor != nil {
		s.global.PriceProximityFactor = *doc.GlobalConfig.PriceProximityFactor
	}

	for _, it := range doc.StockItems {
		s.stock[it.ID] = domain.StockItem{
			ID:        it.ID,
			Name:      it.Name,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ExpiresAt: it.ExpiresAt,
		}
	}

	for _, p := range doc.Products {
		active := true
		if p.Active != nil {
			active = *p.Active
		}
		s.products = append(s.products, domain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Active:   active,
		})
		if p.Sheet != nil {
			s.sheets[p.ID] = domain.TechnicalSheet{
				ProductID:        p.ID,
				CMV:              p.Sheet.CMV,
				LaborCostPerHour: p.Sheet.LaborCostPerHour,
				PrepTimeMinutes:  p.Sheet.PrepTimeMinutes,
				PackagingCost:    p.Sheet.PackagingCost,
				YieldKg:          p.Sheet.YieldKg,
				YieldPortions:    p.Sheet.YieldPortions,
				SalePrice:        p.Sheet.SalePrice,
			}
		}
		if p.Config != nil {
			s.overrides[p.ID] = domain.ProductConfig{
				ProductID:           p.ID,
				VariableExpensesPct: p.Config.VariableExpensesPct,
				FixedExpensesPct:    p.Config.FixedExpensesPct,
				ProfitPct:           p.Config.ProfitPct,
				InvestmentPct:       p.Config.InvestmentPct,
			}
		}
		for _, ln := range p.Recipe {
			if _, ok := s.stock[ln.StockItemID]; !ok {
				return nil, fmt.Errorf("catálogo inválido: receita de %q referencia item de estoque desconhecido %s", p.Name, ln.StockItemID)
			}
			s.recipes[p.ID] = append(s.recipes[p.ID], domain.RecipeItem{
				SheetProductID: p.ID,
				StockItemID:    ln.StockItemID,
				Quantity:       ln.Quantity,
				Unit:           ln.Unit,
			})
		}
	}

	return s, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *Store) FindSheet(ctx context.Context, productID uuid.UUID) (*domain.TechnicalSheet, error) {
	sheet, ok := s.sheets[productID]
	if !ok {
		return nil, nil
	}
	cp := sheet
	return &cp, nil
}

func (s *Store) RecipeFor(ctx context.Context, productID uuid.UUID) ([]domain.RecipeItem, error) {
	lines := s.recipes[productID]
	out := make([]domain.RecipeItem, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *Store) Global(ctx context.Context) (domain.GlobalConfig, error) {
	return s.global, nil
}

func (s *Store) ProductOverride(ctx context.Context, productID uuid.UUID) (*domain.ProductConfig, error) {
	cfg, ok := s.overrides[productID]
	if !ok {
		return nil, nil
	}
	cp := cfg
	return &cp, nil
}

func (s *Store) FindStockItem(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	it, ok := s.stock[id]
	if !ok {
		return nil, domain.ErrStockItemNotFound
	}
	cp := it
	return &cp, nil
}
