package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucashmelo/precifica/internal/domain"
	"github.com/lucashmelo/precifica/internal/pricing"
)

type PricingUC struct {
	Catalog domain.ProductCatalog
	Configs domain.ConfigStore
	Stock   domain.StockRepo
}

// ProductPricing pairs a product with its computed indicators.
type ProductPricing struct {
	Product domain.Product
	Pricing domain.CalculatedPricing
}

func (uc *PricingUC) ForProduct(ctx context.Context, productID uuid.UUID) (*domain.CalculatedPricing, error) {
	sheet, err := uc.Catalog.FindSheet(ctx, productID)
	if err != nil {
		return nil, err
	}
	global, override, err := uc.configFor(ctx, productID)
	if err != nil {
		return nil, err
	}
	result := pricing.Calculate(sheet, global, override)
	if result == nil {
		return nil, domain.ErrNoSheet
	}
	return result, nil
}

// Overview prices every active product that has a sheet. Products without one
// are skipped, not errors: a product may legitimately predate its sheet.
func (uc *PricingUC) Overview(ctx context.Context) ([]ProductPricing, error) {
	products, err := uc.Catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	global, err := uc.Configs.Global(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductPricing, 0, len(products))
	for _, p := range products {
		if !p.Active {
			continue
		}
		sheet, err := uc.Catalog.FindSheet(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		override, err := uc.Configs.ProductOverride(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		result := pricing.Calculate(sheet, global, override)
		if result == nil {
			continue
		}
		out = append(out, ProductPricing{Product: p, Pricing: *result})
	}
	return out, nil
}

func (uc *PricingUC) SimulateDiscount(ctx context.Context, productID uuid.UUID, discountPct float64) (*domain.DiscountSimulation, error) {
	sheet, err := uc.Catalog.FindSheet(ctx, productID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNoSheet
	}
	global, override, err := uc.configFor(ctx, productID)
	if err != nil {
		return nil, err
	}
	result := pricing.Calculate(sheet, global, override)
	sim := pricing.SimulateDiscount(*result, sheet.SalePrice, discountPct)
	return &sim, nil
}

// RecalculateCMV prices the recipe of a sheet from current stock costs. It
// returns the CMV the sheet should carry; saving it is the catalog's job.
func (uc *PricingUC) RecalculateCMV(ctx context.Context, productID uuid.UUID) (float64, error) {
	recipe, err := uc.Catalog.RecipeFor(ctx, productID)
	if err != nil {
		return 0, err
	}
	lines := make([]pricing.CostLine, 0, len(recipe))
	for _, item := range recipe {
		stock, err := uc.Stock.FindStockItem(ctx, item.StockItemID)
		if err != nil {
			return 0, err
		}
		lines = append(lines, pricing.CostLine{
			UnitPrice: stock.UnitPrice,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		})
	}
	return pricing.SheetCMV(lines), nil
}

func (uc *PricingUC) configFor(ctx context.Context, productID uuid.UUID) (domain.GlobalConfig, *domain.ProductConfig, error) {
	global, err := uc.Configs.Global(ctx)
	if err != nil {
		return domain.GlobalConfig{}, nil, err
	}
	override, err := uc.Configs.ProductOverride(ctx, productID)
	if err != nil {
		return domain.GlobalConfig{}, nil, err
	}
	return global, override, nil
}
