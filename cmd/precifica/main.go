package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/lucashmelo/precifica/internal/app"
	"github.com/lucashmelo/precifica/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	path := os.Getenv("CATALOG_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "catalog.json"
	}

	application, err := app.NewApp(path)
	if err != nil {
		zlog.Fatal().Err(err).Str("catalog", path).Msg("failed to load catalog")
	}

	rows, err := application.PricingUC.Overview(context.Background())
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to compute pricing overview")
	}
	zlog.Info().Str("catalog", path).Int("products", len(rows)).Msg("catalog loaded")

	printReport(rows)
}

func printReport(rows []usecase.ProductPricing) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUTO\tCVU\tPM\tPV\tMARGEM %\tSTATUS\tERRO")
	for _, r := range rows {
		p := r.Pricing
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.1f\t%s\t%s\n",
			r.Product.Name, p.CVU, p.PM, p.PV, p.ContributionMarginPct, p.Status, p.Error)
	}
	_ = w.Flush()
}
