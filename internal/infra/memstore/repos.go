package memstore

import (
	"context"
	"strings"

	"github.com/PeymanKh/CRFMS/internal/domain/branch"
	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/infra"

	"github.com/google/uuid"
)

type vehicleRepo struct{ tx *tx }

func (r *vehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, ok := r.tx.vehicleRow(id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "vehicle not found")
	}
	return row.entity(), nil
}

func (r *vehicleRepo) Save(_ context.Context, v *vehicle.Vehicle) error {
	if v == nil || v.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save vehicle without id", nil)
	}
	r.tx.vehicles[v.ID()] = toVehicleRow(v)
	return nil
}

type customerRepo struct{ tx *tx }

func (r *customerRepo) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, ok := r.tx.customerRow(id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "customer not found")
	}
	return row.entity(), nil
}

func (r *customerRepo) Save(_ context.Context, c *customer.Customer) error {
	if c == nil || c.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save customer without id", nil)
	}
	r.tx.customers[c.ID()] = toCustomerRow(c)
	return nil
}

type reservationRepo struct{ tx *tx }

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, ok := r.tx.reservationRow(id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return row.entity(), nil
}

func (r *reservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	if res == nil || res.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save reservation without id", nil)
	}
	if _, known := r.tx.reservationRow(res.ID()); !known {
		r.tx.newReservations = append(r.tx.newReservations, res.ID())
	}
	r.tx.reservations[res.ID()] = toReservationRow(res)
	return nil
}

func (r *reservationRepo) CompletedCount(_ context.Context, customerID uuid.UUID) (int, error) {
	return r.tx.completedCount(customerID), nil
}

type branchRepo struct{ tx *tx }

func (r *branchRepo) FindByID(_ context.Context, id uuid.UUID) (*branch.Branch, error) {
	if row, ok := r.tx.branches[id]; ok {
		return row.entity(), nil
	}
	if row, ok := r.tx.store.branches[id]; ok {
		return row.entity(), nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "branch not found")
}

func (r *branchRepo) Save(_ context.Context, b *branch.Branch) error {
	if b == nil || b.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save branch without id", nil)
	}
	r.tx.branches[b.ID()] = toBranchRow(b)
	return nil
}

// Catalog records are immutable values, so they are stored as-is.
type catalogRepo struct{ tx *tx }

func (r *catalogRepo) VehicleClassByID(_ context.Context, id uuid.UUID) (*catalog.VehicleClass, error) {
	if c, ok := r.tx.classes[id]; ok {
		return c, nil
	}
	if c, ok := r.tx.store.classes[id]; ok {
		return c, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "vehicle class not found")
}

func (r *catalogRepo) InsuranceTierByID(_ context.Context, id uuid.UUID) (catalog.InsuranceTier, error) {
	if t, ok := r.tx.tiers[id]; ok {
		return t, nil
	}
	if t, ok := r.tx.store.tiers[id]; ok {
		return t, nil
	}
	return catalog.InsuranceTier{}, infra.NewRepoErr(infra.KindNotFound, "insurance tier not found")
}

func (r *catalogRepo) AddOnByID(_ context.Context, id uuid.UUID) (catalog.AddOn, error) {
	if a, ok := r.tx.addOns[id]; ok {
		return a, nil
	}
	if a, ok := r.tx.store.addOns[id]; ok {
		return a, nil
	}
	return catalog.AddOn{}, infra.NewRepoErr(infra.KindNotFound, "add-on not found")
}

func (r *catalogRepo) SaveVehicleClass(_ context.Context, c *catalog.VehicleClass) error {
	if c == nil || c.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save vehicle class without id", nil)
	}
	if nameTaken(r.tx.classes, r.tx.store.classes, c.ID(), c.Name()) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "vehicle class "+c.Name()+" already exists")
	}
	r.tx.classes[c.ID()] = c
	return nil
}

func (r *catalogRepo) SaveInsuranceTier(_ context.Context, t catalog.InsuranceTier) error {
	if t.IsZero() {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save insurance tier without id", nil)
	}
	if nameTaken(r.tx.tiers, r.tx.store.tiers, t.ID(), t.Name()) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "insurance tier "+t.Name()+" already exists")
	}
	r.tx.tiers[t.ID()] = t
	return nil
}

func (r *catalogRepo) SaveAddOn(_ context.Context, a catalog.AddOn) error {
	if a.ID() == uuid.Nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindInvalidRecord, "cannot save add-on without id", nil)
	}
	if nameTaken(r.tx.addOns, r.tx.store.addOns, a.ID(), a.Name()) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "add-on "+a.Name()+" already exists")
	}
	r.tx.addOns[a.ID()] = a
	return nil
}

type named interface {
	ID() uuid.UUID
	Name() string
}

// nameTaken reports whether a different record already uses name. Catalog names are unique, case-insensitively.
func nameTaken[T named](staged, committed map[uuid.UUID]T, id uuid.UUID, name string) bool {
	for _, table := range []map[uuid.UUID]T{staged, committed} {
		for otherID, rec := range table {
			if otherID != id && strings.EqualFold(rec.Name(), name) {
				return true
			}
		}
	}
	return false
}
