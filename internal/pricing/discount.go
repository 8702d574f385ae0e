package pricing

import "github.com/lucashmelo/precifica/internal/domain"

// SimulateDiscount applies a hypothetical discount over an already calculated
// pricing. The base price is the charged sale price when one is set, otherwise
// the suggested price. The discounted price is reclassified against PM and PV
// exactly like a charged price would be.
func SimulateDiscount(p domain.CalculatedPricing, salePrice, discountPct float64) domain.DiscountSimulation {
	if discountPct < 0 {
		discountPct = 0
	}
	if discountPct > 100 {
		discountPct = 100
	}

	base := salePrice
	if base <= 0 {
		base = p.PV
	}
	if base <= 0 {
		return domain.DiscountSimulation{DiscountPct: discountPct, Status: domain.StatusInviavel}
	}

	discounted := base * (1 - discountPct/100)

	st := domain.StatusSaudavel
	switch {
	case discounted < p.PM:
		st = domain.StatusInviavel
	case discounted < p.PV:
		st = domain.StatusAtencao
	}

	return domain.DiscountSimulation{
		BasePrice:              base,
		DiscountPct:            discountPct,
		DiscountedPrice:        discounted,
		MaxDiscountForSurvival: maxDiscount(base, p.PM),
		MaxDiscountForHealthy:  maxDiscount(base, p.PV),
		Status:                 st,
	}
}

func maxDiscount(base, floor float64) float64 {
	d := (base - floor) / base * 100
	if d < 0 {
		return 0
	}
	return d
}
