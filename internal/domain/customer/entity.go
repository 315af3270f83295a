package customer

import (
	"slices"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingReservationID = errs.Validation("reservation id is required")
	ErrDuplicateReservation = errs.Validation("reservation already recorded for customer")
)

// Customer is a renter. Reservation ids are kept in booking order and only appended.
type Customer struct {
	id             uuid.UUID
	profile        person.Profile
	reservationIDs []uuid.UUID
	createdAt      time.Time
}

func NewCustomer(id uuid.UUID, p person.ProfileParams, now time.Time) (*Customer, error) {
	profile, err := person.NewProfile(p, now)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Customer{
		id:        id,
		profile:   profile,
		createdAt: now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, p person.ProfileParams, reservationIDs []uuid.UUID, createdAt time.Time) *Customer {
	return &Customer{
		id:             id,
		profile:        person.ReconstructProfile(p),
		reservationIDs: slices.Clone(reservationIDs),
		createdAt:      createdAt,
	}
}

// CanAddReservation reports why id could not be recorded, without mutating c.
func (c *Customer) CanAddReservation(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrMissingReservationID
	}
	if slices.Contains(c.reservationIDs, id) {
		return ErrDuplicateReservation
	}
	return nil
}

func (c *Customer) AddReservation(id uuid.UUID) error {
	if err := c.CanAddReservation(id); err != nil {
		return err
	}
	c.reservationIDs = append(c.reservationIDs, id)
	return nil
}

func (c *Customer) HasReservation(id uuid.UUID) bool {
	return slices.Contains(c.reservationIDs, id)
}

func (c *Customer) ID() uuid.UUID               { return c.id }
func (c *Customer) Profile() person.Profile     { return c.profile }
func (c *Customer) FullName() string            { return c.profile.FullName() }
func (c *Customer) Email() string               { return c.profile.Email().Value() }
func (c *Customer) ReservationIDs() []uuid.UUID { return slices.Clone(c.reservationIDs) }
func (c *Customer) CreatedAt() time.Time        { return c.createdAt }
