// Package pricing computes sale-price indicators from a technical sheet and a
// layered percentage configuration. Everything here is pure: no I/O, no state,
// safe to call concurrently.
package pricing

import "github.com/lucashmelo/precifica/internal/domain"

const (
	errTotalSaturated = "a soma dos percentuais (DV + DF + L + I) não pode atingir 100%"
	errBaseSaturated  = "despesas variáveis e fixas (DV + DF) não podem atingir 100%"
)

// Percentages are the four effective levers as fractions of the sale price.
type Percentages struct {
	DV float64 // variable expenses
	DF float64 // fixed expenses
	L  float64 // profit
	I  float64 // investment
}

// ResolvePercentages merges the global percentages with an optional per-product
// override. Non-nil override fields win; stored percent values become fractions.
func ResolvePercentages(global domain.GlobalConfig, override *domain.ProductConfig) Percentages {
	dv := global.VariableExpensesPct
	df := global.FixedExpensesPct
	l := global.ProfitPct
	i := global.InvestmentPct
	if override != nil {
		if override.VariableExpensesPct != nil {
			dv = *override.VariableExpensesPct
		}
		if override.FixedExpensesPct != nil {
			df = *override.FixedExpensesPct
		}
		if override.ProfitPct != nil {
			l = *override.ProfitPct
		}
		if override.InvestmentPct != nil {
			i = *override.InvestmentPct
		}
	}
	return Percentages{DV: dv / 100, DF: df / 100, L: l / 100, I: i / 100}
}

// Calculate derives the full pricing of one sheet. A nil sheet yields nil: the
// caller has nothing to price. Invalid percentage configurations are reported
// through Status/Error on the result, never as an error value or panic.
func Calculate(sheet *domain.TechnicalSheet, global domain.GlobalConfig, override *domain.ProductConfig) *domain.CalculatedPricing {
	if sheet == nil {
		return nil
	}

	p := ResolvePercentages(global, override)

	// The four-lever check comes first: it is the broader failure. The DV+DF
	// check stays independent because it alone drives the PM denominator.
	if p.DV+p.DF+p.L+p.I >= 1 {
		return inviable(errTotalSaturated)
	}
	if p.DV+p.DF >= 1 {
		return inviable(errBaseSaturated)
	}

	laborCost := sheet.LaborCostPerHour * (float64(sheet.PrepTimeMinutes) / 60)
	cvu := sheet.CMV + laborCost + sheet.PackagingCost

	pv := cvu / (1 - (p.DV + p.DF + p.L + p.I))
	pm := cvu / (1 - (p.DV + p.DF))

	contributionMargin := pv - cvu - pv*p.DV
	contributionMarginPct := 0.0
	if pv > 0 {
		contributionMarginPct = contributionMargin / pv * 100
	}

	out := &domain.CalculatedPricing{
		CVU:                   cvu,
		PV:                    pv,
		PM:                    pm,
		ProfitPerUnit:         pv * p.L,
		InvestmentPerUnit:     pv * p.I,
		ContributionMargin:    contributionMargin,
		ContributionMarginPct: contributionMarginPct,
		Status:                status(sheet, global, pv, pm, contributionMarginPct),
	}

	if sheet.YieldKg > 0 {
		out.CostPerKg = ptr(cvu / sheet.YieldKg)
		out.PricePerKg = ptr(pv / sheet.YieldKg)
	}
	if sheet.YieldPortions > 0 {
		out.CostPerPortion = ptr(cvu / sheet.YieldPortions)
		out.PricePerPortion = ptr(pv / sheet.YieldPortions)
	}

	return out
}

// status classifies viability. With a real charged price the charged price is
// compared against the computed bounds; without one the theoretical PV is
// judged against PM, the proximity band and the margin threshold.
func status(sheet *domain.TechnicalSheet, global domain.GlobalConfig, pv, pm, marginPct float64) domain.ViabilityStatus {
	if sheet.SalePrice > 0 {
		switch {
		case sheet.SalePrice < pm:
			return domain.StatusInviavel
		case sheet.SalePrice < pv:
			return domain.StatusAtencao
		default:
			return domain.StatusSaudavel
		}
	}
	switch {
	case pv <= pm:
		return domain.StatusInviavel
	case pv <= pm*global.PriceProximityFactor || marginPct < global.HealthyMarginThreshold:
		return domain.StatusAtencao
	default:
		return domain.StatusSaudavel
	}
}

func inviable(msg string) *domain.CalculatedPricing {
	return &domain.CalculatedPricing{Status: domain.StatusInviavel, Error: msg}
}

func ptr(v float64) *float64 { return &v }
