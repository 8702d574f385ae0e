package catalogjson

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashmelo/precifica/internal/domain"
)

const validCatalog = `{
  "global_config": {
    "variable_expenses_pct": 10,
    "fixed_expenses_pct": 30,
    "profit_pct": 15,
    "investment_pct": 5
  },
  "stock_items": [
    {"id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", "name": "Farinha", "unit": "kg", "unit_price": 10, "quantity": 12},
    {"id": "7c9e6679-7425-40de-944b-e07fc1f90ae7", "name": "Leite", "unit": "l", "unit_price": 4, "quantity": 6}
  ],
  "products": [
    {
      "id": "1e8f6a38-95a6-4f58-9f7e-5ac3b2f3a111",
      "name": "Bolo de Cenoura",
      "category": "doces",
      "sheet": {"cmv": 2, "labor_cost_per_hour": 30, "prep_time_minutes": 12, "packaging_cost": 0.5, "yield_kg": 2, "yield_portions": 8, "sale_price": 0},
      "config": {"profit_pct": 30},
      "recipe": [
        {"stock_item_id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", "quantity": 250, "unit": "g"},
        {"stock_item_id": "7c9e6679-7425-40de-944b-e07fc1f90ae7", "quantity": 500, "unit": "ml"}
      ]
    },
    {
      "id": "2f9f6a38-95a6-4f58-9f7e-5ac3b2f3a222",
      "name": "Produto Novo",
      "active": false
    }
  ]
}`

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func TestParse_ValidCatalog(t *testing.T) {
	store, err := Parse(strings.NewReader(validCatalog))
	require.NoError(t, err)
	ctx := context.Background()

	cake := mustUUID(t, "1e8f6a38-95a6-4f58-9f7e-5ac3b2f3a111")
	bare := mustUUID(t, "2f9f6a38-95a6-4f58-9f7e-5ac3b2f3a222")
	flour := mustUUID(t, "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].Active, "active defaults to true")
	assert.False(t, products[1].Active)

	global, err := store.Global(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 10, global.VariableExpensesPct, 1e-9)
	assert.InDelta(t, defaultMarginThreshold, global.HealthyMarginThreshold, 1e-9)
	assert.InDelta(t, defaultProximityFactor, global.PriceProximityFactor, 1e-9)

	sheet, err := store.FindSheet(ctx, cake)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.InDelta(t, 2, sheet.CMV, 1e-9)
	assert.Equal(t, 12, sheet.PrepTimeMinutes)
	assert.InDelta(t, 8, sheet.YieldPortions, 1e-9)

	none, err := store.FindSheet(ctx, bare)
	require.NoError(t, err)
	assert.Nil(t, none, "missing sheet is not an error")

	override, err := store.ProductOverride(ctx, cake)
	require.NoError(t, err)
	require.NotNil(t, override)
	require.NotNil(t, override.ProfitPct)
	assert.InDelta(t, 30, *override.ProfitPct, 1e-9)
	assert.Nil(t, override.VariableExpensesPct, "unset override fields stay nil")

	noOverride, err := store.ProductOverride(ctx, bare)
	require.NoError(t, err)
	assert.Nil(t, noOverride)

	recipe, err := store.RecipeFor(ctx, cake)
	require.NoError(t, err)
	require.Len(t, recipe, 2)
	assert.Equal(t, flour, recipe[0].StockItemID)
	assert.Equal(t, domain.UnitGram, recipe[0].Unit)

	item, err := store.FindStockItem(ctx, flour)
	require.NoError(t, err)
	assert.InDelta(t, 10, item.UnitPrice, 1e-9)

	_, err = store.FindProduct(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = store.FindStockItem(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrStockItemNotFound)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"negative cmv",
			`{"global_config": {"variable_expenses_pct": 10, "fixed_expenses_pct": 30, "profit_pct": 15, "investment_pct": 5},
			  "products": [{"id": "1e8f6a38-95a6-4f58-9f7e-5ac3b2f3a111", "name": "X", "sheet": {"cmv": -1}}]}`,
		},
		{
			"proximity factor not above one",
			`{"global_config": {"variable_expenses_pct": 10, "fixed_expenses_pct": 30, "profit_pct": 15, "investment_pct": 5, "price_proximity_factor": 1}}`,
		},
		{
			"unknown measure unit",
			`{"global_config": {"variable_expenses_pct": 10, "fixed_expenses_pct": 30, "profit_pct": 15, "investment_pct": 5},
			  "stock_items": [{"id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", "name": "Farinha", "unit": "saco", "unit_price": 10}]}`,
		},
		{
			"recipe references unknown stock item",
			`{"global_config": {"variable_expenses_pct": 10, "fixed_expenses_pct": 30, "profit_pct": 15, "investment_pct": 5},
			  "products": [{"id": "1e8f6a38-95a6-4f58-9f7e-5ac3b2f3a111", "name": "X",
			    "recipe": [{"stock_item_id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", "quantity": 1, "unit": "kg"}]}]}`,
		},
		{
			"unknown field",
			`{"global_config": {"variable_expenses_pct": 10, "fixed_expenses_pct": 30, "profit_pct": 15, "investment_pct": 5}, "extra": true}`,
		},
		{
			"not json",
			`produtos:`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nao-existe.json")
	assert.Error(t, err)
}
