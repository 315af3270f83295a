package reservation

import (
	"slices"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/invoice"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Reservation books one vehicle for a customer. It is created PENDING by the
// Factory and only changes status through the transition methods, each of which
// moves the paired vehicle in lock-step.
type Reservation struct {
	id             uuid.UUID
	customerID     uuid.UUID
	vehicleID      uuid.UUID
	insuranceTier  catalog.InsuranceTier
	addOns         []catalog.AddOn
	pickupBranchID uuid.UUID
	returnBranchID uuid.UUID
	period         RentalPeriod
	status         Status
	subtotal       money.Money
	totalPrice     money.Money
	strategy       StrategyKind
	invoice        *invoice.Invoice
	createdAt      time.Time
	updatedAt      time.Time
}

// Snapshot is the flat form of a Reservation, used for storage and reconstruction.
type Snapshot struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	InsuranceTier  catalog.InsuranceTier
	AddOns         []catalog.AddOn
	PickupBranchID uuid.UUID
	ReturnBranchID uuid.UUID
	Period         RentalPeriod
	Status         Status
	Subtotal       money.Money
	TotalPrice     money.Money
	Strategy       StrategyKind
	Invoice        *invoice.Invoice
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructReservation(s Snapshot) *Reservation {
	return &Reservation{
		id:             s.ID,
		customerID:     s.CustomerID,
		vehicleID:      s.VehicleID,
		insuranceTier:  s.InsuranceTier,
		addOns:         slices.Clone(s.AddOns),
		pickupBranchID: s.PickupBranchID,
		returnBranchID: s.ReturnBranchID,
		period:         s.Period,
		status:         s.Status,
		subtotal:       s.Subtotal,
		totalPrice:     s.TotalPrice,
		strategy:       s.Strategy,
		invoice:        s.Invoice,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:             r.id,
		CustomerID:     r.customerID,
		VehicleID:      r.vehicleID,
		InsuranceTier:  r.insuranceTier,
		AddOns:         slices.Clone(r.addOns),
		PickupBranchID: r.pickupBranchID,
		ReturnBranchID: r.returnBranchID,
		Period:         r.period,
		Status:         r.status,
		Subtotal:       r.subtotal,
		TotalPrice:     r.totalPrice,
		Strategy:       r.strategy,
		Invoice:        r.invoice,
		CreatedAt:      r.createdAt,
		UpdatedAt:      r.updatedAt,
	}
}

// Approve confirms a PENDING reservation. The vehicle stays RESERVED.
func (r *Reservation) Approve(v *vehicle.Vehicle, now time.Time) error {
	if err := r.ownsVehicle(v); err != nil {
		return err
	}
	if err := r.checkTransition(StatusApproved); err != nil {
		return err
	}
	if err := expectVehicle(v, vehicle.StatusReserved, vehicle.StatusReserved); err != nil {
		return err
	}
	r.moveTo(StatusApproved, now)
	return nil
}

// PickUp hands the vehicle over for an APPROVED reservation.
func (r *Reservation) PickUp(v *vehicle.Vehicle, now time.Time) error {
	if err := r.ownsVehicle(v); err != nil {
		return err
	}
	if err := r.checkTransition(StatusPickedUp); err != nil {
		return err
	}
	if err := expectVehicle(v, vehicle.StatusReserved, vehicle.StatusPickedUp); err != nil {
		return err
	}
	if err := v.HandOver(); err != nil {
		return err
	}
	r.moveTo(StatusPickedUp, now)
	return nil
}

// Return completes a PICKED_UP reservation and frees the vehicle.
func (r *Reservation) Return(v *vehicle.Vehicle, now time.Time) error {
	if err := r.ownsVehicle(v); err != nil {
		return err
	}
	if err := r.checkTransition(StatusCompleted); err != nil {
		return err
	}
	if err := expectVehicle(v, vehicle.StatusPickedUp, vehicle.StatusAvailable); err != nil {
		return err
	}
	if err := v.Release(); err != nil {
		return err
	}
	r.moveTo(StatusCompleted, now)
	return nil
}

// Cancel is allowed from PENDING or APPROVED only and frees the vehicle.
func (r *Reservation) Cancel(v *vehicle.Vehicle, now time.Time) error {
	if err := r.ownsVehicle(v); err != nil {
		return err
	}
	if !r.status.CanTransitionTo(StatusCancelled) {
		return &InvalidStatusError{Status: r.status}
	}
	if err := expectVehicle(v, vehicle.StatusReserved, vehicle.StatusAvailable); err != nil {
		return err
	}
	if err := v.Release(); err != nil {
		return err
	}
	r.moveTo(StatusCancelled, now)
	return nil
}

func (r *Reservation) ownsVehicle(v *vehicle.Vehicle) error {
	if v == nil {
		return ErrMissingVehicle
	}
	if v.ID() != r.vehicleID {
		return ErrVehicleMismatch
	}
	return nil
}

func (r *Reservation) checkTransition(target Status) error {
	if !r.status.CanTransitionTo(target) {
		return &TransitionError{From: r.status, To: target}
	}
	return nil
}

// expectVehicle guards the lock-step invariant before anything is mutated.
func expectVehicle(v *vehicle.Vehicle, want, target vehicle.Status) error {
	if v.Status() != want {
		return &vehicle.StatusChangeError{From: v.Status(), To: target}
	}
	return nil
}

func (r *Reservation) moveTo(target Status, now time.Time) {
	r.status = target
	r.updatedAt = now
}

func (r *Reservation) IsActive() bool {
	return !r.status.IsTerminal()
}

func (r *Reservation) ID() uuid.UUID                        { return r.id }
func (r *Reservation) CustomerID() uuid.UUID                { return r.customerID }
func (r *Reservation) VehicleID() uuid.UUID                 { return r.vehicleID }
func (r *Reservation) InsuranceTier() catalog.InsuranceTier { return r.insuranceTier }
func (r *Reservation) AddOns() []catalog.AddOn              { return slices.Clone(r.addOns) }
func (r *Reservation) PickupBranchID() uuid.UUID            { return r.pickupBranchID }
func (r *Reservation) ReturnBranchID() uuid.UUID            { return r.returnBranchID }
func (r *Reservation) Period() RentalPeriod                 { return r.period }
func (r *Reservation) PickupDate() time.Time                { return r.period.Pickup() }
func (r *Reservation) ReturnDate() time.Time                { return r.period.Return() }
func (r *Reservation) Status() Status                       { return r.status }
func (r *Reservation) Subtotal() money.Money                { return r.subtotal }
func (r *Reservation) TotalPrice() money.Money              { return r.totalPrice }
func (r *Reservation) Strategy() StrategyKind               { return r.strategy }
func (r *Reservation) Invoice() *invoice.Invoice            { return r.invoice }
func (r *Reservation) CreatedAt() time.Time                 { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                 { return r.updatedAt }
