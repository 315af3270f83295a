package catalog_test

import (
	"strings"
	"testing"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRate money.Money

func (f fixedRate) PricePerDay() money.Money { return money.Money(f) }

func TestVehicleClass(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		class, err := catalog.NewVehicleClass(uuid.Nil, " Economy ", "Small, fuel-efficient vehicles for city driving.",
			money.MustParse("30.00"), []string{"Air conditioning", " Manual transmission "})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, class.ID())
		assert.Equal(t, "Economy", class.Name())
		assert.Equal(t, "30.00", class.BaseDailyRate().String())
		assert.Equal(t, []string{"Air conditioning", "Manual transmission"}, class.Features())
	})

	t.Run("features are copied on read", func(t *testing.T) {
		class, err := catalog.NewVehicleClass(uuid.New(), "SUV", "Larger vehicles", money.MustParse("70"), []string{"AWD"})
		require.NoError(t, err)

		features := class.Features()
		features[0] = "mutated"
		assert.Equal(t, []string{"AWD"}, class.Features())
	})

	cases := []struct {
		name        string
		className   string
		description string
		rate        money.Money
		features    []string
		errIs       error
	}{
		{name: "empty name", className: "  ", description: "d", errIs: catalog.ErrEmptyName},
		{name: "name too long", className: strings.Repeat("a", catalog.MaxNameLength+1), description: "d", errIs: catalog.ErrNameTooLong},
		{name: "empty description", className: "Compact", description: "", errIs: catalog.ErrEmptyDescription},
		{name: "negative rate", className: "Compact", description: "d", rate: money.NewMoney(-1), errIs: catalog.ErrNegativeDailyRate},
		{name: "blank feature", className: "Compact", description: "d", features: []string{"ok", " "}, errIs: catalog.ErrEmptyFeature},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := catalog.NewVehicleClass(uuid.Nil, c.className, c.description, c.rate, c.features)
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestAddOnAndInsuranceTier(t *testing.T) {
	gps, err := catalog.NewAddOn(uuid.Nil, "GPS", "GPS device for vehicle navigation", money.MustParse("10.00"))
	require.NoError(t, err)
	assert.Equal(t, "GPS", gps.Name())
	assert.NotEqual(t, uuid.Nil, gps.ID())

	premium, err := catalog.NewInsuranceTier(uuid.Nil, "Premium", "Covers all damage", money.MustParse("30.00"))
	require.NoError(t, err)
	assert.False(t, premium.IsZero())
	assert.True(t, catalog.InsuranceTier{}.IsZero())

	_, err = catalog.NewAddOn(uuid.Nil, "", "desc", money.MustParse("1"))
	assert.ErrorIs(t, err, catalog.ErrEmptyName)

	_, err = catalog.NewInsuranceTier(uuid.Nil, "Basic", "desc", money.NewMoney(-100))
	assert.ErrorIs(t, err, catalog.ErrNegativeDailyRate)
}

func TestDailyRate(t *testing.T) {
	gps, err := catalog.NewAddOn(uuid.Nil, "GPS", "GPS device", money.MustParse("10.00"))
	require.NoError(t, err)
	seat, err := catalog.NewAddOn(uuid.Nil, "Child Safety Seat", "For children aged 1-4 years", money.MustParse("5.00"))
	require.NoError(t, err)
	tier, err := catalog.NewInsuranceTier(uuid.Nil, "Premium", "Full cover", money.MustParse("30.00"))
	require.NoError(t, err)
	vehicle := fixedRate(money.MustParse("45.00"))

	t.Run("vehicle, tier and add-ons", func(t *testing.T) {
		assert.Equal(t, "90.00", catalog.DailyRate(vehicle, tier, []catalog.AddOn{gps, seat}).String())
	})

	t.Run("no add-ons", func(t *testing.T) {
		assert.Equal(t, "75.00", catalog.DailyRate(vehicle, tier, nil).String())
		assert.True(t, catalog.AddOnsDailyRate(nil).IsZero())
	})
}
