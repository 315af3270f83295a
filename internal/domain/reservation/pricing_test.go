package reservation_test

import (
	"testing"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rate string

func (r rate) PricePerDay() money.Money { return money.MustParse(string(r)) }

func TestSelectStrategy(t *testing.T) {
	policy := reservation.DefaultPricingPolicy()

	cases := []struct {
		completed int
		kind      reservation.StrategyKind
		percent   int
	}{
		{completed: 0, kind: reservation.StrategyFirstOrder, percent: 15},
		{completed: 1, kind: reservation.StrategyDaily},
		{completed: 3, kind: reservation.StrategyDaily},
		{completed: 4, kind: reservation.StrategyLoyalty, percent: 10},
		{completed: 5, kind: reservation.StrategyDaily},
		{completed: 9, kind: reservation.StrategyLoyalty, percent: 10},
		{completed: 14, kind: reservation.StrategyLoyalty, percent: 10},
	}
	for _, c := range cases {
		s := reservation.SelectStrategy(policy, c.completed)
		assert.Equal(t, c.kind, s.Kind(), "completed=%d", c.completed)
		assert.Equal(t, c.percent, s.DiscountPercent(), "completed=%d", c.completed)
	}
}

func TestSelectStrategyCustomPolicy(t *testing.T) {
	policy := reservation.PricingPolicy{FirstOrderPercent: 20, LoyaltyPercent: 5, LoyaltyEvery: 3}
	require.NoError(t, policy.Validate())

	assert.Equal(t, 20, reservation.SelectStrategy(policy, 0).DiscountPercent())
	assert.Equal(t, reservation.StrategyLoyalty, reservation.SelectStrategy(policy, 2).Kind())
	assert.Equal(t, reservation.StrategyDaily, reservation.SelectStrategy(policy, 3).Kind())

	assert.ErrorIs(t, reservation.PricingPolicy{LoyaltyEvery: 0}.Validate(), reservation.ErrInvalidPricingPolicy)
	assert.ErrorIs(t, reservation.PricingPolicy{FirstOrderPercent: 101, LoyaltyEvery: 5}.Validate(), reservation.ErrInvalidPricingPolicy)
}

func TestStrategyCalculate(t *testing.T) {
	gps, err := catalog.NewAddOn(uuid.New(), "GPS", "Navigation", money.MustParse("10.00"))
	require.NoError(t, err)
	pickup := time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)
	threeDays, err := reservation.NewRentalPeriod(pickup, pickup.AddDate(0, 0, 3))
	require.NoError(t, err)
	policy := reservation.DefaultPricingPolicy()

	cases := []struct {
		name      string
		completed int
		want      string
	}{
		{name: "first order", completed: 0, want: "216.75"},
		{name: "fifth order", completed: 4, want: "229.50"},
		{name: "second order", completed: 1, want: "255.00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := reservation.SelectStrategy(policy, c.completed)
			total, err := s.Calculate(rate("45.00"), rate("30.00"), threeDays, []catalog.AddOn{gps})
			require.NoError(t, err)
			assert.Equal(t, c.want, total.String())

			q, err := s.Quote(rate("45.00"), rate("30.00"), threeDays, []catalog.AddOn{gps})
			require.NoError(t, err)
			assert.Equal(t, "85.00", q.DailyRate.String())
			assert.Equal(t, 3, q.Days)
			assert.Equal(t, "255.00", q.Subtotal.String())
		})
	}

	t.Run("discount applies to the subtotal once", func(t *testing.T) {
		// ten days at 0.01: discounting each day would truncate every cent to zero
		period, err := reservation.NewRentalPeriod(pickup, pickup.AddDate(0, 0, 10))
		require.NoError(t, err)
		total, err := reservation.SelectStrategy(policy, 0).Calculate(rate("0.01"), rate("0"), period, nil)
		require.NoError(t, err)
		assert.Equal(t, "0.08", total.String())
	})

	t.Run("same day rental costs nothing", func(t *testing.T) {
		period, err := reservation.NewRentalPeriod(pickup, pickup)
		require.NoError(t, err)
		total, err := reservation.SelectStrategy(policy, 1).Calculate(rate("45.00"), rate("30.00"), period, nil)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestNewRentalPeriod(t *testing.T) {
	pickup := time.Date(2025, 10, 28, 15, 30, 0, 0, time.UTC)

	p, err := reservation.NewRentalPeriod(pickup, pickup.AddDate(0, 0, 2).Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Days())
	assert.Equal(t, time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), p.Pickup())

	_, err = reservation.NewRentalPeriod(pickup, pickup.AddDate(0, 0, -1))
	require.ErrorIs(t, err, reservation.ErrReturnBeforePickup)
	var rbp *reservation.ReturnBeforePickupError
	require.ErrorAs(t, err, &rbp)
	assert.Equal(t, "2025-10-27", rbp.Return.Format(time.DateOnly))

	_, err = reservation.NewRentalPeriod(time.Time{}, pickup)
	assert.ErrorIs(t, err, reservation.ErrMissingDates)
}
