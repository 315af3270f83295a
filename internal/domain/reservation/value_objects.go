package reservation

import (
	"time"

	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
)

// RentalPeriod is a pickup/return pair of calendar dates. Equal dates are allowed.
type RentalPeriod struct {
	pickup time.Time
	ret    time.Time
}

func NewRentalPeriod(pickup, ret time.Time) (RentalPeriod, error) {
	if pickup.IsZero() || ret.IsZero() {
		return RentalPeriod{}, ErrMissingDates
	}
	pickup, ret = clock.DateOf(pickup), clock.DateOf(ret)
	if ret.Before(pickup) {
		return RentalPeriod{}, &ReturnBeforePickupError{Pickup: pickup, Return: ret}
	}
	return RentalPeriod{pickup: pickup, ret: ret}, nil
}

func (p RentalPeriod) Pickup() time.Time {
	return p.pickup
}

func (p RentalPeriod) Return() time.Time {
	return p.ret
}

// Days counts whole calendar days between pickup and return; zero for same-day rentals.
func (p RentalPeriod) Days() int {
	return int(p.ret.Sub(p.pickup).Hours() / 24)
}
