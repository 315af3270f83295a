package reservation

import (
	"slices"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/invoice"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock  clock.Clock
	Policy PricingPolicy
	// NewID issues reservation ids; nil means uuid.New.
	NewID func() uuid.UUID
}

func NewFactory(clock clock.Clock, policy PricingPolicy) *Factory {
	return &Factory{
		Clock:  clock,
		Policy: policy,
	}
}

type CreateParams struct {
	Customer       *customer.Customer
	Vehicle        *vehicle.Vehicle
	InsuranceTier  catalog.InsuranceTier
	AddOns         []catalog.AddOn
	PickupBranchID uuid.UUID
	ReturnBranchID uuid.UUID
	PickupDate     time.Time
	ReturnDate     time.Time
	// CompletedCount is the customer's number of COMPLETED reservations.
	CompletedCount int
}

func (f *Factory) newID() uuid.UUID {
	if f.NewID == nil {
		return uuid.New()
	}
	return f.NewID()
}

// CreateReservation books p.Vehicle for p.Customer. On success the vehicle is
// RESERVED and the new reservation id is appended to the customer; on failure
// neither is touched.
func (f *Factory) CreateReservation(p CreateParams) (*Reservation, error) {
	switch {
	case p.Customer == nil:
		return nil, ErrMissingCustomer
	case p.Vehicle == nil:
		return nil, ErrMissingVehicle
	case p.InsuranceTier.IsZero():
		return nil, ErrMissingInsuranceTier
	case p.PickupBranchID == uuid.Nil || p.ReturnBranchID == uuid.Nil:
		return nil, ErrMissingBranch
	case p.CompletedCount < 0:
		return nil, ErrNegativeCompletedCount
	}
	if err := f.Policy.Validate(); err != nil {
		return nil, err
	}

	if !p.Vehicle.IsAvailable() {
		return nil, &VehicleNotAvailableError{VehicleID: p.Vehicle.ID(), Status: p.Vehicle.Status()}
	}

	period, err := NewRentalPeriod(p.PickupDate, p.ReturnDate)
	if err != nil {
		return nil, err
	}

	strategy := SelectStrategy(f.Policy, p.CompletedCount)
	quote, err := strategy.Quote(p.Vehicle, p.InsuranceTier, period, p.AddOns)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	id := f.newID()
	inv, err := invoice.NewInvoice(id, quote.Total, now)
	if err != nil {
		return nil, err
	}

	r := &Reservation{
		id:             id,
		customerID:     p.Customer.ID(),
		vehicleID:      p.Vehicle.ID(),
		insuranceTier:  p.InsuranceTier,
		addOns:         slices.Clone(p.AddOns),
		pickupBranchID: p.PickupBranchID,
		returnBranchID: p.ReturnBranchID,
		period:         period,
		status:         StatusPending,
		subtotal:       quote.Subtotal,
		totalPrice:     quote.Total,
		strategy:       quote.Strategy,
		invoice:        inv,
		createdAt:      now,
		updatedAt:      now,
	}

	if err := p.Vehicle.CanMove(vehicle.StatusReserved); err != nil {
		return nil, err
	}
	if err := p.Customer.CanAddReservation(id); err != nil {
		return nil, err
	}
	if err := p.Vehicle.Reserve(); err != nil {
		return nil, err
	}
	if err := p.Customer.AddReservation(id); err != nil {
		return nil, err
	}
	return r, nil
}
