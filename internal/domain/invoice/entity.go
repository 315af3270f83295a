package invoice

import (
	"strings"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrMissingReservation   = errs.Validation("invoice reservation is required")
	ErrNegativeAmount       = errs.Validation("invoice amount cannot be negative")
	ErrEmptyPaymentRef      = errs.Validation("payment reference cannot be empty")
	ErrInvalidPaymentStatus = errs.Validation("invalid payment status")
	ErrInvoiceAlreadyFailed = errs.New("invoice payment already failed")
	ErrInvoiceAlreadyPaid   = errs.New("invoice already paid")
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}

// Invoice bills a reservation for its total price. Its payment status is
// independent of the reservation status.
type Invoice struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        money.Money
	status        PaymentStatus
	paymentRef    string
	paidAt        *time.Time
	createdAt     time.Time
}

func NewInvoice(reservationID uuid.UUID, amount money.Money, now time.Time) (*Invoice, error) {
	if reservationID == uuid.Nil {
		return nil, ErrMissingReservation
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Invoice{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		status:        PaymentPending,
		createdAt:     now,
	}, nil
}

func ReconstructInvoice(
	id, reservationID uuid.UUID,
	amount money.Money,
	status PaymentStatus,
	paymentRef string,
	paidAt *time.Time,
	createdAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		status:        status,
		paymentRef:    paymentRef,
		paidAt:        paidAt,
		createdAt:     createdAt,
	}
}

// PaymentCompleted records a successful charge. Repeating it is a no-op.
func (i *Invoice) PaymentCompleted(ref string, at time.Time) error {
	switch i.status {
	case PaymentCompleted:
		return nil
	case PaymentFailed:
		return ErrInvoiceAlreadyFailed
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrEmptyPaymentRef
	}
	i.status = PaymentCompleted
	i.paymentRef = ref
	i.paidAt = &at
	return nil
}

// PaymentFailed records a declined charge. Repeating it is a no-op.
func (i *Invoice) PaymentFailed() error {
	switch i.status {
	case PaymentFailed:
		return nil
	case PaymentCompleted:
		return ErrInvoiceAlreadyPaid
	}
	i.status = PaymentFailed
	return nil
}

func (i *Invoice) IsPaid() bool {
	return i.status == PaymentCompleted
}

func (i *Invoice) ID() uuid.UUID            { return i.id }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) Amount() money.Money      { return i.amount }
func (i *Invoice) Status() PaymentStatus    { return i.status }
func (i *Invoice) PaymentRef() string       { return i.paymentRef }
func (i *Invoice) PaidAt() *time.Time       { return ptr.Clone(i.paidAt) }
func (i *Invoice) CreatedAt() time.Time     { return i.createdAt }
