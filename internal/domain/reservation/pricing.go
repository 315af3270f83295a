package reservation

import (
	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
)

type StrategyKind string

const (
	StrategyDaily      StrategyKind = "daily"
	StrategyFirstOrder StrategyKind = "first_order"
	StrategyLoyalty    StrategyKind = "loyalty"
)

func (k StrategyKind) String() string {
	return string(k)
}

func (k StrategyKind) IsValid() bool {
	switch k {
	case StrategyDaily, StrategyFirstOrder, StrategyLoyalty:
		return true
	default:
		return false
	}
}

// PricingPolicy holds the discount numbers behind strategy selection.
type PricingPolicy struct {
	FirstOrderPercent int
	LoyaltyPercent    int
	LoyaltyEvery      int
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{FirstOrderPercent: 15, LoyaltyPercent: 10, LoyaltyEvery: 5}
}

func (p PricingPolicy) Validate() error {
	if p.FirstOrderPercent < 0 || p.FirstOrderPercent > 100 ||
		p.LoyaltyPercent < 0 || p.LoyaltyPercent > 100 ||
		p.LoyaltyEvery < 1 {
		return ErrInvalidPricingPolicy
	}
	return nil
}

// Strategy is one of the closed set of pricing variants, bound to its discount.
type Strategy struct {
	kind    StrategyKind
	percent int
}

// SelectStrategy picks the variant from the customer's COMPLETED reservation count:
// the first order gets the first-order discount, every LoyaltyEvery-th order the
// loyalty discount, everything else the plain daily rate.
func SelectStrategy(policy PricingPolicy, completed int) Strategy {
	switch {
	case completed == 0:
		return Strategy{kind: StrategyFirstOrder, percent: policy.FirstOrderPercent}
	case policy.LoyaltyEvery > 0 && (completed+1)%policy.LoyaltyEvery == 0:
		return Strategy{kind: StrategyLoyalty, percent: policy.LoyaltyPercent}
	default:
		return Strategy{kind: StrategyDaily}
	}
}

func (s Strategy) Kind() StrategyKind {
	return s.kind
}

func (s Strategy) DiscountPercent() int {
	return s.percent
}

// Quote is the price breakdown of one booking.
type Quote struct {
	DailyRate money.Money
	Days      int
	Subtotal  money.Money
	Total     money.Money
	Strategy  StrategyKind
}

func (s Strategy) Quote(vehicle, tier catalog.Rated, period RentalPeriod, addOns []catalog.AddOn) (Quote, error) {
	daily := catalog.DailyRate(vehicle, tier, addOns)
	days := period.Days()
	subtotal := daily.Multiply(int64(days))

	total, err := subtotal.PercentOff(s.percent)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		DailyRate: daily,
		Days:      days,
		Subtotal:  subtotal,
		Total:     total,
		Strategy:  s.kind,
	}, nil
}

// Calculate returns the total price with the discount applied once to the subtotal.
func (s Strategy) Calculate(vehicle, tier catalog.Rated, period RentalPeriod, addOns []catalog.AddOn) (money.Money, error) {
	q, err := s.Quote(vehicle, tier, period, addOns)
	if err != nil {
		return money.Money{}, err
	}
	return q.Total, nil
}
