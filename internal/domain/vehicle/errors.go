package vehicle

import (
	"fmt"

	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
)

var (
	ErrEmptyBrand           = errs.Validation("vehicle brand cannot be empty")
	ErrEmptyModel           = errs.Validation("vehicle model cannot be empty")
	ErrEmptyColor           = errs.Validation("vehicle color cannot be empty")
	ErrEmptyLicencePlate    = errs.Validation("vehicle licence plate cannot be empty")
	ErrInvalidFuelLevel     = errs.Validation("fuel level must be between 0 and 1")
	ErrNegativeOdometer     = errs.Validation("odometer cannot be negative")
	ErrServiceAfterOdometer = errs.Validation("last service odometer cannot exceed current odometer")
	ErrNegativePricePerDay  = errs.Validation("vehicle price per day cannot be negative")
	ErrMissingVehicleClass  = errs.Validation("vehicle class is required")
	ErrMissingCurrentBranch = errs.Validation("vehicle current branch is required")
	ErrInvalidStatus        = errs.Validation("invalid vehicle status")
	ErrInvalidStatusChange  = errs.New("invalid vehicle status change")
)

// StatusChangeError reports a vehicle status change attempted from the wrong status.
type StatusChangeError struct {
	From Status
	To   Status
}

func (e *StatusChangeError) Error() string {
	return fmt.Sprintf("vehicle cannot move from '%s' to '%s'", e.From, e.To)
}

func (e *StatusChangeError) Is(target error) bool {
	return target == ErrInvalidStatusChange
}
