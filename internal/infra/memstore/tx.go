package memstore

import (
	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
)

// tx stages writes over the committed tables. Nothing reaches the store
// until commit.
type tx struct {
	store *Store

	vehicles        map[uuid.UUID]vehicleRow
	customers       map[uuid.UUID]customerRow
	reservations    map[uuid.UUID]reservationRow
	newReservations []uuid.UUID
	branches        map[uuid.UUID]branchRow
	classes         map[uuid.UUID]*catalog.VehicleClass
	tiers           map[uuid.UUID]catalog.InsuranceTier
	addOns          map[uuid.UUID]catalog.AddOn
}

var _ shared.Tx = (*tx)(nil)

func newTx(s *Store) *tx {
	return &tx{
		store:        s,
		vehicles:     make(map[uuid.UUID]vehicleRow),
		customers:    make(map[uuid.UUID]customerRow),
		reservations: make(map[uuid.UUID]reservationRow),
		branches:     make(map[uuid.UUID]branchRow),
		classes:      make(map[uuid.UUID]*catalog.VehicleClass),
		tiers:        make(map[uuid.UUID]catalog.InsuranceTier),
		addOns:       make(map[uuid.UUID]catalog.AddOn),
	}
}

func (t *tx) Vehicles() shared.VehicleRepository         { return &vehicleRepo{tx: t} }
func (t *tx) Customers() shared.CustomerRepository       { return &customerRepo{tx: t} }
func (t *tx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }
func (t *tx) Branches() shared.BranchRepository          { return &branchRepo{tx: t} }
func (t *tx) Catalog() shared.CatalogRepository          { return &catalogRepo{tx: t} }

func (t *tx) dirty() bool {
	return len(t.vehicles)+len(t.customers)+len(t.reservations)+len(t.branches)+
		len(t.classes)+len(t.tiers)+len(t.addOns) > 0
}

func (t *tx) commit() {
	s := t.store
	for id, row := range t.vehicles {
		s.vehicles[id] = row
	}
	for id, row := range t.customers {
		s.customers[id] = row
	}
	for id, row := range t.reservations {
		s.reservations[id] = row
	}
	s.reservationOrder = append(s.reservationOrder, t.newReservations...)
	for id, row := range t.branches {
		s.branches[id] = row
	}
	for id, c := range t.classes {
		s.classes[id] = c
	}
	for id, tier := range t.tiers {
		s.tiers[id] = tier
	}
	for id, a := range t.addOns {
		s.addOns[id] = a
	}
}

func (t *tx) vehicleRow(id uuid.UUID) (vehicleRow, bool) {
	if row, ok := t.vehicles[id]; ok {
		return row, true
	}
	row, ok := t.store.vehicles[id]
	return row, ok
}

func (t *tx) customerRow(id uuid.UUID) (customerRow, bool) {
	if row, ok := t.customers[id]; ok {
		return row, true
	}
	row, ok := t.store.customers[id]
	return row, ok
}

func (t *tx) reservationRow(id uuid.UUID) (reservationRow, bool) {
	if row, ok := t.reservations[id]; ok {
		return row, true
	}
	row, ok := t.store.reservations[id]
	return row, ok
}

func (t *tx) completedCount(customerID uuid.UUID) int {
	n := 0
	count := func(row reservationRow) {
		if row.snapshot.CustomerID == customerID && row.snapshot.Status == reservation.StatusCompleted {
			n++
		}
	}
	for id, row := range t.store.reservations {
		if staged, ok := t.reservations[id]; ok {
			row = staged
		}
		count(row)
	}
	for _, id := range t.newReservations {
		count(t.reservations[id])
	}
	return n
}
