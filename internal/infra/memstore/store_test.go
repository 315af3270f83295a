package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/infra"
	"github.com/PeymanKh/CRFMS/internal/infra/memstore"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/pkg/logger"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"
	"github.com/PeymanKh/CRFMS/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC)

// book creates a reservation through the factory and stores every touched record.
func book(t *testing.T, store *memstore.Store, b *builder.ReservationBuilder) *reservation.Reservation {
	t.Helper()
	p, err := b.BuildParams()
	require.NoError(t, err)
	r, err := reservation.NewFactory(clock.NewMockClock(now), reservation.DefaultPricingPolicy()).CreateReservation(p)
	require.NoError(t, err)

	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().Save(ctx, p.Vehicle); err != nil {
			return err
		}
		if err := tx.Customers().Save(ctx, p.Customer); err != nil {
			return err
		}
		return tx.Reservations().Save(ctx, r)
	})
	require.NoError(t, err)
	return r
}

func TestWithinCommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())
	v, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vehicles().Save(ctx, v)
	}))

	boom := errors.New("boom")
	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Vehicles().FindByID(ctx, v.ID())
		if err != nil {
			return err
		}
		if err := stored.Reserve(); err != nil {
			return err
		}
		if err := tx.Vehicles().Save(ctx, stored); err != nil {
			return err
		}

		staged, err := tx.Vehicles().FindByID(ctx, v.ID())
		if err != nil {
			return err
		}
		assert.Equal(t, vehicle.StatusReserved, staged.Status())
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Reads().VehicleByID(ctx, v.ID())
	require.NoError(t, err)
	assert.Equal(t, vehicle.StatusAvailable, got.Status())
}

func TestEntitiesAreDetached(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())
	r := book(t, store, builder.NewReservationBuilder())

	got, err := store.Reads().ReservationByID(ctx, r.ID())
	require.NoError(t, err)
	require.NoError(t, got.Invoice().PaymentFailed())

	again, err := store.Reads().ReservationByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, "pending", again.Invoice().Status().String())
	assert.Equal(t, "216.75", again.TotalPrice().String())
	assert.Equal(t, reservation.StatusPending, again.Status())
}

func TestReservationsByCustomerKeepsBookingOrder(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())

	customerID := uuid.New()
	forCustomer := func(b *builder.ReservationBuilder) { b.Customer.ID = customerID }

	first := book(t, store, builder.NewReservationBuilder().With(forCustomer))
	book(t, store, builder.NewReservationBuilder())
	second := book(t, store, builder.NewReservationBuilder().With(forCustomer))
	third := book(t, store, builder.NewReservationBuilder().With(forCustomer))

	list, err := store.Reads().ReservationsByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, first.ID(), list[0].ID())
	assert.Equal(t, second.ID(), list[1].ID())
	assert.Equal(t, third.ID(), list[2].ID())
}

func TestCompletedCount(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())
	r := book(t, store, builder.NewReservationBuilder())

	count, err := store.Reads().CompletedCount(ctx, r.CustomerID())
	require.NoError(t, err)
	assert.Zero(t, count)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, r.ID())
		if err != nil {
			return err
		}
		v, err := tx.Vehicles().FindByID(ctx, res.VehicleID())
		if err != nil {
			return err
		}
		for _, step := range []func(*vehicle.Vehicle, time.Time) error{res.Approve, res.PickUp, res.Return} {
			if err := step(v, now); err != nil {
				return err
			}
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}
		staged, err := tx.Reservations().CompletedCount(ctx, r.CustomerID())
		if err != nil {
			return err
		}
		assert.Equal(t, 1, staged)
		return tx.Vehicles().Save(ctx, v)
	})
	require.NoError(t, err)

	count, err = store.Reads().CompletedCount(ctx, r.CustomerID())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())

	_, err := store.Reads().ReservationByID(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Catalog().InsuranceTierByID(ctx, uuid.New())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestWithinRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memstore.New(logger.Discard()).Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.True(t, errs.Is(err, shared.ErrTransactionBegin))
	assert.False(t, called)
}

func TestCatalogNamesAreUnique(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.Discard())

	gps, err := catalog.NewAddOn(uuid.Nil, "GPS", "Navigation device", money.MustParse("10.00"))
	require.NoError(t, err)
	again, err := catalog.NewAddOn(uuid.Nil, "gps", "Another navigator", money.MustParse("12.00"))
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().SaveAddOn(ctx, gps)
	}))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().SaveAddOn(ctx, again)
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

	// Re-saving the same record is an update, not a duplicate.
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().SaveAddOn(ctx, gps)
	}))
}
