package notification

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation_created"
	EventReservationApproved  EventType = "reservation_approved"
	EventReservationPickedUp  EventType = "reservation_picked_up"
	EventReservationCompleted EventType = "reservation_completed"
	EventReservationCancelled EventType = "reservation_cancelled"
	EventPaymentCompleted     EventType = "payment_completed"
	EventPaymentFailed        EventType = "payment_failed"
)

func (t EventType) String() string {
	return string(t)
}

// Event describes something that happened to a reservation or its invoice.
type Event struct {
	Type          EventType
	ReservationID uuid.UUID
	CustomerID    uuid.UUID
	VehicleID     uuid.UUID
	Status        string
	Amount        string
	OccurredAt    time.Time
}
