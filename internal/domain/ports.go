package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrNoSheet           = errors.New("produto sem ficha técnica")
	ErrStockItemNotFound = errors.New("item de estoque não encontrado")
)

// ProductCatalog supplies product and technical sheet records.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]Product, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindSheet returns (nil, nil) when the product exists but has no sheet.
	FindSheet(ctx context.Context, productID uuid.UUID) (*TechnicalSheet, error)
	RecipeFor(ctx context.Context, productID uuid.UUID) ([]RecipeItem, error)
}

// ConfigStore supplies the global percentages and per-product overrides.
type ConfigStore interface {
	Global(ctx context.Context) (GlobalConfig, error)
	// ProductOverride returns (nil, nil) when the product has no override.
	ProductOverride(ctx context.Context, productID uuid.UUID) (*ProductConfig, error)
}

type StockRepo interface {
	FindStockItem(ctx context.Context, id uuid.UUID) (*StockItem, error)
}
