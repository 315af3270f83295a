package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/notification"

	"github.com/google/uuid"
)

// Notifier delivers reservation events. Delivery never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, event notification.Event)
}

type PaymentGateway interface {
	// Charge returns a declined Receipt, not an error, when the card is refused.
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

type Card struct {
	Holder string
	Number string
	CVV    string
	// Expiry is MM/YY.
	Expiry string
}

type ChargeRequest struct {
	InvoiceID uuid.UUID
	Amount    money.Money
	Card      Card
}

type Receipt struct {
	Approved    bool
	Reference   string
	Reason      string
	ProcessedAt time.Time
}

// Recorder receives operational counters.
type Recorder interface {
	Transition(name string)
	Failure(operation string)
	Payment(result string)
	Booked(total money.Money, days int)
}
