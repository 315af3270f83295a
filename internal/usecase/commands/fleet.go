package commands

import (
	"context"
	"log/slog"

	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
)

type FleetCommands interface {
	RegisterVehicle(ctx context.Context, p vehicle.Params) (uuid.UUID, error)
	RegisterCustomer(ctx context.Context, p person.ProfileParams) (uuid.UUID, error)
	SendToMaintenance(ctx context.Context, vehicleID uuid.UUID) error
	ReturnFromMaintenance(ctx context.Context, vehicleID uuid.UUID) error
}

type fleetUseCaseImpl struct {
	uow      shared.UnitOfWork
	recorder Recorder
	clock    clock.Clock
	logger   *slog.Logger
}

func NewFleetUseCase(uow shared.UnitOfWork, recorder Recorder, clk clock.Clock, logger *slog.Logger) FleetCommands {
	return &fleetUseCaseImpl{uow: uow, recorder: recorder, clock: clk, logger: logger}
}

// RegisterVehicle adds an AVAILABLE vehicle; its class and branch must exist.
func (uc *fleetUseCaseImpl) RegisterVehicle(ctx context.Context, p vehicle.Params) (uuid.UUID, error) {
	id, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (uuid.UUID, error) {
		if _, err := tx.Catalog().VehicleClassByID(ctx, p.ClassID); err != nil {
			return uuid.Nil, lookupErr(err, ErrVehicleClassNotFound)
		}
		if _, err := tx.Branches().FindByID(ctx, p.CurrentBranchID); err != nil {
			return uuid.Nil, lookupErr(err, ErrBranchNotFound)
		}
		v, err := vehicle.NewVehicle(p)
		if err != nil {
			return uuid.Nil, err
		}
		if err := tx.Vehicles().Save(ctx, v); err != nil {
			return uuid.Nil, err
		}
		return v.ID(), nil
	})
	if err != nil {
		uc.recorder.Failure("register_vehicle")
		uc.logger.WarnContext(ctx, "vehicle registration failed", "error", err.Error())
		return uuid.Nil, err
	}
	uc.logger.InfoContext(ctx, "vehicle registered", "vehicle_id", id.String())
	return id, nil
}

func (uc *fleetUseCaseImpl) RegisterCustomer(ctx context.Context, p person.ProfileParams) (uuid.UUID, error) {
	c, err := customer.NewCustomer(uuid.Nil, p, uc.clock.Now())
	if err != nil {
		uc.recorder.Failure("register_customer")
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Save(ctx, c)
	})
	if err != nil {
		uc.recorder.Failure("register_customer")
		return uuid.Nil, err
	}
	uc.logger.InfoContext(ctx, "customer registered", "customer_id", c.ID().String())
	return c.ID(), nil
}

func (uc *fleetUseCaseImpl) SendToMaintenance(ctx context.Context, vehicleID uuid.UUID) error {
	return uc.maintenance(ctx, vehicleID, "send_to_maintenance", (*vehicle.Vehicle).SendToMaintenance)
}

func (uc *fleetUseCaseImpl) ReturnFromMaintenance(ctx context.Context, vehicleID uuid.UUID) error {
	return uc.maintenance(ctx, vehicleID, "return_from_maintenance", (*vehicle.Vehicle).ReturnFromMaintenance)
}

func (uc *fleetUseCaseImpl) maintenance(ctx context.Context, vehicleID uuid.UUID, operation string, step func(*vehicle.Vehicle) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByID(ctx, vehicleID)
		if err != nil {
			return lookupErr(err, ErrVehicleNotFound)
		}
		if err := step(v); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Vehicles().Save(ctx, v)
	})
	if err != nil {
		uc.recorder.Failure(operation)
		uc.logger.WarnContext(ctx, "vehicle "+operation+" failed", "vehicle_id", vehicleID.String(), "error", err.Error())
		return err
	}
	uc.recorder.Transition(operation)
	uc.logger.InfoContext(ctx, "vehicle "+operation, "vehicle_id", vehicleID.String())
	return nil
}
