package queries

import (
	"context"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/infra"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrReservationNotFound = errs.New("reservation not found")

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID   `json:"id"`
	CustomerID     uuid.UUID   `json:"customer_id"`
	VehicleID      uuid.UUID   `json:"vehicle_id"`
	PickupBranchID uuid.UUID   `json:"pickup_branch_id"`
	ReturnBranchID uuid.UUID   `json:"return_branch_id"`
	PickupDate     time.Time   `json:"pickup_date"`
	ReturnDate     time.Time   `json:"return_date"`
	Status         string      `json:"status"`
	Strategy       string      `json:"strategy"`
	InsuranceTier  string      `json:"insurance_tier" copier:"-"`
	AddOns         []string    `json:"add_ons" copier:"-"`
	Subtotal       string      `json:"subtotal"`
	TotalPrice     string      `json:"total_price"`
	Invoice        InvoiceView `json:"invoice" copier:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type InvoiceView struct {
	ID         uuid.UUID  `json:"id"`
	Amount     string     `json:"amount"`
	Status     string     `json:"status"`
	PaymentRef string     `json:"payment_ref,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByCustomer returns the customer's reservations in booking order.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error)
	CompletedCount(ctx context.Context, customerID uuid.UUID) (int, error)
}

type reservationQueriesImpl struct {
	reads shared.Reads
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{reads: uow.Reads()}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.reads.ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return toReservationView(r)
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error) {
	rows, err := q.reads.ReservationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]*ReservationListItem, 0, len(rows))
	for _, r := range rows {
		item := &ReservationListItem{}
		if err := copier.CopyWithOption(item, r, copyOptions); err != nil {
			return nil, errs.Wrap(err, "map reservation list item")
		}
		items = append(items, item)
	}
	return items, nil
}

func (q *reservationQueriesImpl) CompletedCount(ctx context.Context, customerID uuid.UUID) (int, error) {
	return q.reads.CompletedCount(ctx, customerID)
}

// copyOptions lets copier read entity getters and render domain values as strings.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(money.Money).String(), nil },
		},
		{
			SrcType: reservation.Status(""),
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(reservation.Status).String(), nil },
		},
		{
			SrcType: reservation.StrategyKind(""),
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(reservation.StrategyKind).String(), nil },
		},
	},
}

func toReservationView(r *reservation.Reservation) (*ReservationView, error) {
	view := &ReservationView{}
	if err := copier.CopyWithOption(view, r, copyOptions); err != nil {
		return nil, errs.Wrap(err, "map reservation view")
	}
	view.InsuranceTier = r.InsuranceTier().Name()
	view.AddOns = addOnNames(r.AddOns())

	if inv := r.Invoice(); inv != nil {
		view.Invoice = InvoiceView{
			ID:         inv.ID(),
			Amount:     inv.Amount().String(),
			Status:     inv.Status().String(),
			PaymentRef: inv.PaymentRef(),
			PaidAt:     inv.PaidAt(),
		}
	}
	return view, nil
}

func addOnNames(addOns []catalog.AddOn) []string {
	names := make([]string, 0, len(addOns))
	for _, a := range addOns {
		names = append(names, a.Name())
	}
	return names
}
