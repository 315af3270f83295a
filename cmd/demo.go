package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/PeymanKh/CRFMS/internal/infra/seed"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"
	"github.com/PeymanKh/CRFMS/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// demo walks the seeded fleet through a full rental, a declined payment and a maintenance round.
type demo struct {
	fx.In

	Fleet        *seed.Fleet
	Reservations commands.ReservationCommands
	FleetOps     commands.FleetCommands
	Queries      queries.ReservationQueries
	Vehicles     queries.FleetQueries
	Clock        clock.Clock
}

const demoTier = "Premium"

var (
	goodCard = commands.Card{Holder: "Peyman Khodabandehlouei", Number: "4242 4242 4242 4242", CVV: "123", Expiry: "12/30"}
	badCard  = commands.Card{Holder: "Peyman Khodabandehlouei", Number: "1234 1234 1234 1234", CVV: "123", Expiry: "12/30"}
)

func (d demo) run(ctx context.Context, out io.Writer) error {
	if len(d.Fleet.Customers) == 0 || len(d.Fleet.Vehicles) == 0 {
		return errs.New("fleet needs at least one customer and one vehicle")
	}
	if _, ok := d.Fleet.InsuranceTiers[demoTier]; !ok {
		return errs.Newf("fleet has no %s insurance tier", demoTier)
	}
	customerID := d.Fleet.Customers[0]

	section(out, "Fleet")
	for _, b := range d.Fleet.Branches {
		fmt.Fprintf(out, "branch %s (%s), %d employees\n", b.Name(), b.City(), len(b.EmployeeIDs()))
	}
	for _, e := range d.Fleet.Employees {
		fmt.Fprintf(out, "  %s, %s, %s\n", e.FullName(), e.Role(), e.EmploymentType())
		for _, line := range e.WorkSchedule().Describe() {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
	vehicles, err := d.Vehicles.ListVehicles(ctx)
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		fmt.Fprintf(out, "vehicle %s %s [%s] %s/day, %s\n", v.Brand, v.Model, v.LicencePlate, v.PricePerDay, v.Status)
	}
	vehicleID, branchID := vehicles[0].ID, vehicles[0].CurrentBranchID

	section(out, "Reserve")
	res, err := d.Reservations.Create(ctx, d.request(customerID, vehicleID, branchID, 3))
	if err != nil {
		return err
	}
	printReservation(out, res)

	if err := d.Reservations.Approve(ctx, res.ID); err != nil {
		return err
	}
	fmt.Fprintln(out, "approved by agent")

	section(out, "Payment")
	paid, err := d.Reservations.Pay(ctx, res.ID, goodCard)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "receipt %s, invoice %s %s\n", paid.Reference, paid.Invoice.Amount, paid.Invoice.Status)

	section(out, "Rental")
	for _, step := range []struct {
		name string
		fn   func(context.Context, uuid.UUID) error
	}{
		{"picked up", d.Reservations.PickUp},
		{"returned", d.Reservations.Return},
	} {
		if err := step.fn(ctx, res.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, step.name)
	}
	if err := d.Reservations.Cancel(ctx, res.ID); err != nil {
		fmt.Fprintf(out, "cancel after return rejected: %v\n", err)
	}

	section(out, "Declined payment")
	second, err := d.Reservations.Create(ctx, d.request(customerID, vehicleID, branchID, 5))
	if err != nil {
		return err
	}
	printReservation(out, second)
	if _, err := d.Reservations.Pay(ctx, second.ID, badCard); errs.Is(err, commands.ErrPaymentDeclined) {
		fmt.Fprintf(out, "payment declined: %v\n", err)
	} else if err != nil {
		return err
	}
	if err := d.Reservations.Cancel(ctx, second.ID); err != nil {
		return err
	}
	fmt.Fprintln(out, "cancelled, vehicle released")

	section(out, "Maintenance")
	if err := d.FleetOps.SendToMaintenance(ctx, vehicleID); err != nil {
		return err
	}
	if _, err := d.Reservations.Create(ctx, d.request(customerID, vehicleID, branchID, 1)); err != nil {
		fmt.Fprintf(out, "booking while in service rejected: %v\n", err)
	}
	if err := d.FleetOps.ReturnFromMaintenance(ctx, vehicleID); err != nil {
		return err
	}
	v, err := d.Vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s back in service: %s\n", v.LicencePlate, v.Status)

	section(out, "History")
	items, err := d.Queries.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Fprintf(out, "%s %s..%s %-9s %s\n", it.ID, day(it.PickupDate), day(it.ReturnDate), it.Status, it.TotalPrice)
	}
	completed, err := d.Queries.CompletedCount(ctx, customerID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "completed rentals: %d\n", completed)
	return nil
}

// request books a round trip from branchID starting today.
func (d demo) request(customerID, vehicleID, branchID uuid.UUID, days int) commands.CreateReservationRequest {
	addOns := make([]uuid.UUID, 0, len(d.Fleet.AddOns))
	for _, name := range []string{"GPS", "Child Safety Seat"} {
		if id, ok := d.Fleet.AddOns[name]; ok {
			addOns = append(addOns, id)
		}
	}

	pickup := clock.Today(d.Clock)
	return commands.CreateReservationRequest{
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		InsuranceTierID: d.Fleet.InsuranceTiers[demoTier],
		AddOnIDs:        addOns,
		PickupBranchID:  branchID,
		ReturnBranchID:  branchID,
		PickupDate:      pickup,
		ReturnDate:      pickup.AddDate(0, 0, days),
	}
}

func printReservation(out io.Writer, r *queries.ReservationView) {
	fmt.Fprintf(out, "reservation %s: %s..%s, %s + %v\n", r.ID, day(r.PickupDate), day(r.ReturnDate), r.InsuranceTier, r.AddOns)
	fmt.Fprintf(out, "  subtotal %s, %s pricing, total %s, status %s\n", r.Subtotal, r.Strategy, r.TotalPrice, r.Status)
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n-------------------- %s --------------------\n", title)
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}
