package memstore

import (
	"slices"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/branch"
	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/invoice"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Rows hold plain data only. Entities are rebuilt from them on every read so a
// caller can never mutate stored state without saving.

type vehicleRow struct {
	params vehicle.Params
	status vehicle.Status
}

func toVehicleRow(v *vehicle.Vehicle) vehicleRow {
	return vehicleRow{params: v.Params(), status: v.Status()}
}

func (r vehicleRow) entity() *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(r.params, r.status)
}

type customerRow struct {
	id             uuid.UUID
	profile        person.ProfileParams
	reservationIDs []uuid.UUID
	createdAt      time.Time
}

func toCustomerRow(c *customer.Customer) customerRow {
	return customerRow{
		id:             c.ID(),
		profile:        c.Profile().Params(),
		reservationIDs: c.ReservationIDs(),
		createdAt:      c.CreatedAt(),
	}
}

func (r customerRow) entity() *customer.Customer {
	return customer.ReconstructCustomer(r.id, r.profile, r.reservationIDs, r.createdAt)
}

type invoiceRow struct {
	id         uuid.UUID
	amount     money.Money
	status     invoice.PaymentStatus
	paymentRef string
	paidAt     *time.Time
	createdAt  time.Time
}

type reservationRow struct {
	snapshot reservation.Snapshot
	invoice  *invoiceRow
}

func toReservationRow(r *reservation.Reservation) reservationRow {
	snap := r.Snapshot()
	row := reservationRow{snapshot: snap}
	if inv := snap.Invoice; inv != nil {
		ir := invoiceRow{
			id:         inv.ID(),
			amount:     inv.Amount(),
			status:     inv.Status(),
			paymentRef: inv.PaymentRef(),
			paidAt:     inv.PaidAt(),
			createdAt:  inv.CreatedAt(),
		}
		row.invoice = &ir
	}
	row.snapshot.Invoice = nil
	row.snapshot.AddOns = slices.Clone(snap.AddOns)
	return row
}

func (r reservationRow) entity() *reservation.Reservation {
	snap := r.snapshot
	if ir := r.invoice; ir != nil {
		snap.Invoice = invoice.ReconstructInvoice(ir.id, snap.ID, ir.amount, ir.status, ir.paymentRef, ptr.Clone(ir.paidAt), ir.createdAt)
	}
	return reservation.ReconstructReservation(snap)
}

type branchRow struct {
	params      branch.Params
	employeeIDs []uuid.UUID
}

func toBranchRow(b *branch.Branch) branchRow {
	return branchRow{params: b.Params(), employeeIDs: b.EmployeeIDs()}
}

func (r branchRow) entity() *branch.Branch {
	return branch.ReconstructBranch(r.params, r.employeeIDs)
}
