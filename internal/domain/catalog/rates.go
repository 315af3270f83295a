package catalog

import "github.com/PeymanKh/CRFMS/internal/domain/money"

// Rated is anything with a daily rate: vehicles, insurance tiers, add-ons.
type Rated interface {
	PricePerDay() money.Money
}

// DailyRate is the per-day charge of a rental before any discount.
func DailyRate(vehicle Rated, tier Rated, addOns []AddOn) money.Money {
	total := vehicle.PricePerDay().Add(tier.PricePerDay())
	return total.Add(AddOnsDailyRate(addOns))
}

func AddOnsDailyRate(addOns []AddOn) money.Money {
	var total money.Money
	for _, a := range addOns {
		total = total.Add(a.PricePerDay())
	}
	return total
}
