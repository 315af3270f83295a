package reservation

import (
	"fmt"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer        = errs.Validation("customer is required")
	ErrMissingVehicle         = errs.Validation("vehicle is required")
	ErrMissingInsuranceTier   = errs.Validation("insurance tier is required")
	ErrMissingBranch          = errs.Validation("pickup and return branches are required")
	ErrMissingDates           = errs.Validation("pickup and return dates are required")
	ErrNegativeCompletedCount = errs.Validation("completed reservation count cannot be negative")
	ErrVehicleMismatch        = errs.Validation("vehicle does not belong to reservation")
	ErrInvalidStatus          = errs.Validation("invalid reservation status")
	ErrInvalidPricingPolicy   = errs.Validation("invalid pricing policy")
)

var (
	ErrVehicleNotAvailable          = errs.New("vehicle is not available")
	ErrReturnBeforePickup           = errs.New("return date is before pickup date")
	ErrInvalidStatusForCancellation = errs.New("reservation cannot be cancelled in its current status")
	ErrInvalidStatusTransition      = errs.New("invalid reservation status transition")
)

// VehicleNotAvailableError carries the status that blocked the booking.
type VehicleNotAvailableError struct {
	VehicleID uuid.UUID
	Status    vehicle.Status
}

func (e *VehicleNotAvailableError) Error() string {
	return fmt.Sprintf("vehicle %s is not available (status '%s')", e.VehicleID, e.Status)
}

func (e *VehicleNotAvailableError) Is(target error) bool {
	return target == ErrVehicleNotAvailable
}

type ReturnBeforePickupError struct {
	Pickup time.Time
	Return time.Time
}

func (e *ReturnBeforePickupError) Error() string {
	return fmt.Sprintf("return date %s is before pickup date %s",
		e.Return.Format(time.DateOnly), e.Pickup.Format(time.DateOnly))
}

func (e *ReturnBeforePickupError) Is(target error) bool {
	return target == ErrReturnBeforePickup
}

// InvalidStatusError is returned by Cancel outside PENDING and APPROVED.
type InvalidStatusError struct {
	Status Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("cannot cancel reservation in status '%s'", e.Status)
}

func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatusForCancellation
}

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("reservation cannot move from '%s' to '%s'", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidStatusTransition
}
