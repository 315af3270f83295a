package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/invoice"
	"github.com/PeymanKh/CRFMS/internal/domain/notification"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/infra"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/queries"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrVehicleNotFound       = errs.New("vehicle not found")
	ErrCustomerNotFound      = errs.New("customer not found")
	ErrBranchNotFound        = errs.New("branch not found")
	ErrInsuranceTierNotFound = errs.New("insurance tier not found")
	ErrAddOnNotFound         = errs.New("add-on not found")
	ErrVehicleClassNotFound  = errs.New("vehicle class not found")
	ErrPaymentDeclined       = errs.New("payment declined")
)

type CreateReservationRequest struct {
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	InsuranceTierID uuid.UUID
	AddOnIDs        []uuid.UUID
	PickupBranchID  uuid.UUID
	ReturnBranchID  uuid.UUID
	PickupDate      time.Time
	ReturnDate      time.Time
}

type PaymentResult struct {
	Approved  bool
	Reference string
	Reason    string
	Invoice   queries.InvoiceView
}

type ReservationCommands interface {
	Create(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error)
	Approve(ctx context.Context, id uuid.UUID) error
	PickUp(ctx context.Context, id uuid.UUID) error
	Return(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	// Pay charges the invoice amount and records the outcome on the invoice.
	Pay(ctx context.Context, id uuid.UUID, card Card) (*PaymentResult, error)
	RecordPaymentCompleted(ctx context.Context, id uuid.UUID, ref string) error
	RecordPaymentFailed(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	gateway            PaymentGateway
	notifier           Notifier
	recorder           Recorder
	clock              clock.Clock
	logger             *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	gateway PaymentGateway,
	notifier Notifier,
	recorder Recorder,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		gateway:            gateway,
		notifier:           notifier,
		recorder:           recorder,
		clock:              clock,
		logger:             logger,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error) {
	created, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*reservation.Reservation, error) {
		params, err := uc.loadCreateParams(ctx, tx, req)
		if err != nil {
			return nil, err
		}

		res, err := uc.reservationFactory.CreateReservation(params)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Vehicles().Save(ctx, params.Vehicle); err != nil {
			return nil, err
		}
		if err := tx.Customers().Save(ctx, params.Customer); err != nil {
			return nil, err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		uc.fail(ctx, "create", uuid.Nil, err)
		return nil, err
	}

	uc.recorder.Transition("create")
	uc.recorder.Booked(created.TotalPrice(), created.Period().Days())
	uc.logger.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID().String(),
		"customer_id", created.CustomerID().String(),
		"vehicle_id", created.VehicleID().String(),
		"strategy", created.Strategy().String(),
		"total", created.TotalPrice().String(),
	)
	uc.notify(ctx, notification.EventReservationCreated, created)

	// Read-after-write: return the stored view
	return uc.reservationQueries.GetByID(ctx, created.ID())
}

func (uc *reservationUseCaseImpl) loadCreateParams(ctx context.Context, tx shared.Tx, req CreateReservationRequest) (reservation.CreateParams, error) {
	var p reservation.CreateParams

	c, err := tx.Customers().FindByID(ctx, req.CustomerID)
	if err != nil {
		return p, lookupErr(err, ErrCustomerNotFound)
	}
	v, err := tx.Vehicles().FindByID(ctx, req.VehicleID)
	if err != nil {
		return p, lookupErr(err, ErrVehicleNotFound)
	}
	tier, err := tx.Catalog().InsuranceTierByID(ctx, req.InsuranceTierID)
	if err != nil {
		return p, lookupErr(err, ErrInsuranceTierNotFound)
	}
	addOns := make([]catalog.AddOn, 0, len(req.AddOnIDs))
	for _, id := range req.AddOnIDs {
		a, err := tx.Catalog().AddOnByID(ctx, id)
		if err != nil {
			return p, lookupErr(err, ErrAddOnNotFound)
		}
		addOns = append(addOns, a)
	}
	for _, id := range []uuid.UUID{req.PickupBranchID, req.ReturnBranchID} {
		if _, err := tx.Branches().FindByID(ctx, id); err != nil {
			return p, lookupErr(err, ErrBranchNotFound)
		}
	}

	// Counted under the same lock as the write, so concurrent completions cannot skew pricing.
	completed, err := tx.Reservations().CompletedCount(ctx, c.ID())
	if err != nil {
		return p, err
	}

	return reservation.CreateParams{
		Customer:       c,
		Vehicle:        v,
		InsuranceTier:  tier,
		AddOns:         addOns,
		PickupBranchID: req.PickupBranchID,
		ReturnBranchID: req.ReturnBranchID,
		PickupDate:     req.PickupDate,
		ReturnDate:     req.ReturnDate,
		CompletedCount: completed,
	}, nil
}

func (uc *reservationUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "approve", notification.EventReservationApproved, (*reservation.Reservation).Approve)
}

func (uc *reservationUseCaseImpl) PickUp(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "pickup", notification.EventReservationPickedUp, (*reservation.Reservation).PickUp)
}

func (uc *reservationUseCaseImpl) Return(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "return", notification.EventReservationCompleted, (*reservation.Reservation).Return)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "cancel", notification.EventReservationCancelled, (*reservation.Reservation).Cancel)
}

type transitionFunc func(r *reservation.Reservation, v *vehicle.Vehicle, now time.Time) error

// transition loads the reservation with its vehicle, applies step and stores both.
func (uc *reservationUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	operation string,
	event notification.EventType,
	step transitionFunc,
) error {
	updated, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*reservation.Reservation, error) {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return nil, lookupErr(err, ErrReservationNotFound)
		}
		v, err := tx.Vehicles().FindByID(ctx, res.VehicleID())
		if err != nil {
			return nil, lookupErr(err, ErrVehicleNotFound)
		}

		if err := step(res, v, uc.clock.Now()); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Vehicles().Save(ctx, v); err != nil {
			return nil, err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		uc.fail(ctx, operation, id, err)
		return err
	}

	uc.recorder.Transition(operation)
	uc.logger.InfoContext(ctx, "reservation "+operation,
		"reservation_id", id.String(),
		"status", updated.Status().String(),
	)
	uc.notify(ctx, event, updated)
	return nil
}

// Pay holds the unit of work across the charge so a pending invoice is
// charged at most once and no payment signal can land between charge and record.
func (uc *reservationUseCaseImpl) Pay(ctx context.Context, id uuid.UUID, card Card) (*PaymentResult, error) {
	type outcome struct {
		receipt *Receipt
		updated *reservation.Reservation
	}

	out, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (outcome, error) {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return outcome{}, lookupErr(err, ErrReservationNotFound)
		}

		inv := res.Invoice()
		switch inv.Status() {
		case invoice.PaymentCompleted:
			return outcome{receipt: &Receipt{Approved: true, Reference: inv.PaymentRef()}}, nil
		case invoice.PaymentFailed:
			return outcome{}, errs.Mark(invoice.ErrInvoiceAlreadyFailed, errs.ErrDomainValidation)
		}

		receipt, err := uc.gateway.Charge(ctx, ChargeRequest{InvoiceID: inv.ID(), Amount: inv.Amount(), Card: card})
		if err != nil {
			return outcome{}, errs.Mark(err, errs.ErrCollaboratorFailed)
		}

		signal := func(inv *invoice.Invoice) error { return inv.PaymentFailed() }
		if receipt.Approved {
			signal = func(inv *invoice.Invoice) error { return inv.PaymentCompleted(receipt.Reference, uc.clock.Now()) }
		}
		if err := uc.signalInvoice(ctx, tx, res, signal); err != nil {
			return outcome{}, err
		}
		return outcome{receipt: receipt, updated: res}, nil
	})
	if err != nil {
		uc.fail(ctx, "pay", id, err)
		return nil, err
	}

	if out.updated != nil {
		if out.receipt.Approved {
			uc.paymentRecorded(ctx, "completed", notification.EventPaymentCompleted, out.updated)
		} else {
			uc.paymentRecorded(ctx, "failed", notification.EventPaymentFailed, out.updated)
		}
	}

	result, err := uc.paymentResult(ctx, id, out.receipt)
	if err != nil {
		return nil, err
	}
	if !out.receipt.Approved {
		return result, errs.Wrapf(ErrPaymentDeclined, "%s", out.receipt.Reason)
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) paymentResult(ctx context.Context, id uuid.UUID, receipt *Receipt) (*PaymentResult, error) {
	view, err := uc.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{
		Approved:  receipt.Approved,
		Reference: receipt.Reference,
		Reason:    receipt.Reason,
		Invoice:   view.Invoice,
	}, nil
}

func (uc *reservationUseCaseImpl) RecordPaymentCompleted(ctx context.Context, id uuid.UUID, ref string) error {
	return uc.recordPayment(ctx, id, "completed", notification.EventPaymentCompleted, func(inv *invoice.Invoice) error {
		return inv.PaymentCompleted(ref, uc.clock.Now())
	})
}

func (uc *reservationUseCaseImpl) RecordPaymentFailed(ctx context.Context, id uuid.UUID) error {
	return uc.recordPayment(ctx, id, "failed", notification.EventPaymentFailed, func(inv *invoice.Invoice) error {
		return inv.PaymentFailed()
	})
}

func (uc *reservationUseCaseImpl) recordPayment(
	ctx context.Context,
	id uuid.UUID,
	result string,
	event notification.EventType,
	signal func(*invoice.Invoice) error,
) error {
	updated, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*reservation.Reservation, error) {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return nil, lookupErr(err, ErrReservationNotFound)
		}
		if err := uc.signalInvoice(ctx, tx, res, signal); err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		uc.fail(ctx, "payment_"+result, id, err)
		return err
	}

	uc.paymentRecorded(ctx, result, event, updated)
	return nil
}

func (uc *reservationUseCaseImpl) signalInvoice(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	signal func(*invoice.Invoice) error,
) error {
	if err := signal(res.Invoice()); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return tx.Reservations().Save(ctx, res)
}

// paymentRecorded runs after commit.
func (uc *reservationUseCaseImpl) paymentRecorded(ctx context.Context, result string, event notification.EventType, updated *reservation.Reservation) {
	uc.recorder.Payment(result)
	uc.logger.InfoContext(ctx, "payment "+result,
		"reservation_id", updated.ID().String(),
		"invoice_id", updated.Invoice().ID().String(),
		"amount", updated.Invoice().Amount().String(),
	)
	uc.notify(ctx, event, updated)
}

func (uc *reservationUseCaseImpl) notify(ctx context.Context, event notification.EventType, r *reservation.Reservation) {
	uc.notifier.Notify(ctx, notification.Event{
		Type:          event,
		ReservationID: r.ID(),
		CustomerID:    r.CustomerID(),
		VehicleID:     r.VehicleID(),
		Status:        r.Status().String(),
		Amount:        r.TotalPrice().String(),
		OccurredAt:    uc.clock.Now(),
	})
}

func (uc *reservationUseCaseImpl) fail(ctx context.Context, operation string, id uuid.UUID, err error) {
	uc.recorder.Failure(operation)
	uc.logger.WarnContext(ctx, "reservation "+operation+" failed",
		"reservation_id", id.String(),
		"error", err.Error(),
	)
}

// lookupErr maps a store miss onto the use-case sentinel.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Wrap(err, "store lookup")
}
