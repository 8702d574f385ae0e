package app

import (
	"github.com/lucashmelo/precifica/internal/adapters/catalogjson"
	"github.com/lucashmelo/precifica/internal/usecase"
)

type App struct {
	Store     *catalogjson.Store
	PricingUC *usecase.PricingUC
}

func NewApp(catalogPath string) (*App, error) {
	store, err := catalogjson.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	app := &App{Store: store}
	app.PricingUC = &usecase.PricingUC{Catalog: store, Configs: store, Stock: store}
	return app, nil
}
