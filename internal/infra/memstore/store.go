package memstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is an in-process identity store: every record lives in a table keyed
// by id and references others by id only. Writers are serialized.
type Store struct {
	mu sync.RWMutex

	vehicles         map[uuid.UUID]vehicleRow
	customers        map[uuid.UUID]customerRow
	reservations     map[uuid.UUID]reservationRow
	reservationOrder []uuid.UUID
	branches         map[uuid.UUID]branchRow
	classes          map[uuid.UUID]*catalog.VehicleClass
	tiers            map[uuid.UUID]catalog.InsuranceTier
	addOns           map[uuid.UUID]catalog.AddOn

	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		vehicles:     make(map[uuid.UUID]vehicleRow),
		customers:    make(map[uuid.UUID]customerRow),
		reservations: make(map[uuid.UUID]reservationRow),
		branches:     make(map[uuid.UUID]branchRow),
		classes:      make(map[uuid.UUID]*catalog.VehicleClass),
		tiers:        make(map[uuid.UUID]catalog.InsuranceTier),
		addOns:       make(map[uuid.UUID]catalog.AddOn),
		logger:       logger,
	}
}

// NewUnitOfWork exposes s through the use-case contract.
func NewUnitOfWork(s *Store) shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTx(s)
	if err := fn(ctx, t); err != nil {
		if t.dirty() {
			s.logger.DebugContext(ctx, "unit of work rolled back", "error", err.Error())
		}
		return err
	}
	t.commit()
	return nil
}

func (s *Store) Reads() shared.Reads {
	return &reads{store: s}
}
