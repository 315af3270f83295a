package queries

import (
	"context"

	"github.com/PeymanKh/CRFMS/internal/infra"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

type VehicleView struct {
	ID              uuid.UUID `json:"id"`
	ClassID         uuid.UUID `json:"class_id"`
	CurrentBranchID uuid.UUID `json:"current_branch_id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Color           string    `json:"color"`
	LicencePlate    string    `json:"licence_plate"`
	FuelLevel       float64   `json:"fuel_level"`
	Odometer        float64   `json:"odometer"`
	PricePerDay     string    `json:"price_per_day"`
	Status          string    `json:"status"`
}

type FleetQueries interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListVehicles(ctx context.Context) ([]*VehicleView, error)
}

type fleetQueriesImpl struct {
	reads shared.Reads
}

func NewFleetQueries(uow shared.UnitOfWork) FleetQueries {
	return &fleetQueriesImpl{reads: uow.Reads()}
}

func (q *fleetQueriesImpl) GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	v, err := q.reads.VehicleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	view := &VehicleView{}
	if err := copier.CopyWithOption(view, v, copyOptions); err != nil {
		return nil, errs.Wrap(err, "map vehicle view")
	}
	return view, nil
}

func (q *fleetQueriesImpl) ListVehicles(ctx context.Context) ([]*VehicleView, error) {
	vehicles, err := q.reads.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		view := &VehicleView{}
		if err := copier.CopyWithOption(view, v, copyOptions); err != nil {
			return nil, errs.Wrap(err, "map vehicle view")
		}
		views = append(views, view)
	}
	return views, nil
}
