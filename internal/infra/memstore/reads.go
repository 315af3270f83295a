package memstore

import (
	"context"
	"sort"

	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/infra"

	"github.com/google/uuid"
)

type reads struct {
	store *Store
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return row.entity(), nil
}

// ReservationsByCustomer returns the customer's reservations in booking order.
func (r *reads) ReservationsByCustomer(_ context.Context, customerID uuid.UUID) ([]*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*reservation.Reservation
	for _, id := range r.store.reservationOrder {
		row := r.store.reservations[id]
		if row.snapshot.CustomerID == customerID {
			out = append(out, row.entity())
		}
	}
	return out, nil
}

func (r *reads) CompletedCount(_ context.Context, customerID uuid.UUID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := 0
	for _, row := range r.store.reservations {
		if row.snapshot.CustomerID == customerID && row.snapshot.Status == reservation.StatusCompleted {
			n++
		}
	}
	return n, nil
}

func (r *reads) VehicleByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.vehicles[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "vehicle not found")
	}
	return row.entity(), nil
}

// Vehicles lists the fleet ordered by licence plate.
func (r *reads) Vehicles(_ context.Context) ([]*vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*vehicle.Vehicle, 0, len(r.store.vehicles))
	for _, row := range r.store.vehicles {
		out = append(out, row.entity())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LicencePlate() < out[j].LicencePlate() })
	return out, nil
}

func (r *reads) CustomerByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.customers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "customer not found")
	}
	return row.entity(), nil
}
