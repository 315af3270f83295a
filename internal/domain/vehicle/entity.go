package vehicle

import (
	"strings"

	"github.com/PeymanKh/CRFMS/internal/domain/money"

	"github.com/google/uuid"
)

type Params struct {
	ID                  uuid.UUID
	ClassID             uuid.UUID
	CurrentBranchID     uuid.UUID
	Brand               string
	Model               string
	Color               string
	LicencePlate        string
	FuelLevel           float64
	Odometer            float64
	LastServiceOdometer float64
	PricePerDay         money.Money
}

type Vehicle struct {
	id                  uuid.UUID
	classID             uuid.UUID
	currentBranchID     uuid.UUID
	brand               string
	model               string
	color               string
	licencePlate        string
	fuelLevel           float64
	odometer            float64
	lastServiceOdometer float64
	pricePerDay         money.Money
	status              Status
}

// NewVehicle registers a vehicle; new vehicles start AVAILABLE.
func NewVehicle(p Params) (*Vehicle, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return build(p, StatusAvailable), nil
}

func ReconstructVehicle(p Params, status Status) *Vehicle {
	return build(p, status)
}

func build(p Params, status Status) *Vehicle {
	return &Vehicle{
		id:                  p.ID,
		classID:             p.ClassID,
		currentBranchID:     p.CurrentBranchID,
		brand:               p.Brand,
		model:               p.Model,
		color:               p.Color,
		licencePlate:        p.LicencePlate,
		fuelLevel:           p.FuelLevel,
		odometer:            p.Odometer,
		lastServiceOdometer: p.LastServiceOdometer,
		pricePerDay:         p.PricePerDay,
		status:              status,
	}
}

func validate(p *Params) error {
	p.Brand = strings.TrimSpace(p.Brand)
	p.Model = strings.TrimSpace(p.Model)
	p.Color = strings.TrimSpace(p.Color)
	p.LicencePlate = strings.ToUpper(strings.TrimSpace(p.LicencePlate))

	switch {
	case p.ClassID == uuid.Nil:
		return ErrMissingVehicleClass
	case p.CurrentBranchID == uuid.Nil:
		return ErrMissingCurrentBranch
	case p.Brand == "":
		return ErrEmptyBrand
	case p.Model == "":
		return ErrEmptyModel
	case p.Color == "":
		return ErrEmptyColor
	case p.LicencePlate == "":
		return ErrEmptyLicencePlate
	case p.FuelLevel < 0 || p.FuelLevel > 1:
		return ErrInvalidFuelLevel
	case p.Odometer < 0 || p.LastServiceOdometer < 0:
		return ErrNegativeOdometer
	case p.LastServiceOdometer > p.Odometer:
		return ErrServiceAfterOdometer
	case p.PricePerDay.IsNegative():
		return ErrNegativePricePerDay
	}
	return nil
}

// Params returns the vehicle's record fields, without its status.
func (v *Vehicle) Params() Params {
	return Params{
		ID:                  v.id,
		ClassID:             v.classID,
		CurrentBranchID:     v.currentBranchID,
		Brand:               v.brand,
		Model:               v.model,
		Color:               v.color,
		LicencePlate:        v.licencePlate,
		FuelLevel:           v.fuelLevel,
		Odometer:            v.odometer,
		LastServiceOdometer: v.lastServiceOdometer,
		PricePerDay:         v.pricePerDay,
	}
}

func (v *Vehicle) IsAvailable() bool {
	return v.status == StatusAvailable
}

// NeedsService reports whether the vehicle drove at least interval since its last service.
func (v *Vehicle) NeedsService(interval float64) bool {
	return v.odometer-v.lastServiceOdometer >= interval
}

// Reserve holds an AVAILABLE vehicle for a new reservation.
func (v *Vehicle) Reserve() error {
	return v.move(StatusReserved)
}

// HandOver marks a RESERVED vehicle as driven off the lot.
func (v *Vehicle) HandOver() error {
	return v.move(StatusPickedUp)
}

// Release frees a RESERVED (cancelled) or PICKED_UP (returned) vehicle.
// Use ReturnFromMaintenance for OUT_OF_SERVICE vehicles.
func (v *Vehicle) Release() error {
	if v.status == StatusOutOfService {
		return &StatusChangeError{From: v.status, To: StatusAvailable}
	}
	return v.move(StatusAvailable)
}

func (v *Vehicle) SendToMaintenance() error {
	return v.move(StatusOutOfService)
}

func (v *Vehicle) ReturnFromMaintenance() error {
	if v.status != StatusOutOfService {
		return &StatusChangeError{From: v.status, To: StatusAvailable}
	}
	if err := v.move(StatusAvailable); err != nil {
		return err
	}
	v.lastServiceOdometer = v.odometer
	return nil
}

// CanMove reports whether a move to target is allowed right now, without changing anything.
func (v *Vehicle) CanMove(target Status) error {
	for _, from := range allowedSources[target] {
		if v.status == from {
			return nil
		}
	}
	return &StatusChangeError{From: v.status, To: target}
}

var allowedSources = map[Status][]Status{
	StatusReserved:     {StatusAvailable},
	StatusPickedUp:     {StatusReserved},
	StatusAvailable:    {StatusReserved, StatusPickedUp, StatusOutOfService},
	StatusOutOfService: {StatusAvailable},
}

func (v *Vehicle) move(target Status) error {
	if err := v.CanMove(target); err != nil {
		return err
	}
	v.status = target
	return nil
}

func (v *Vehicle) ID() uuid.UUID                { return v.id }
func (v *Vehicle) ClassID() uuid.UUID           { return v.classID }
func (v *Vehicle) CurrentBranchID() uuid.UUID   { return v.currentBranchID }
func (v *Vehicle) Brand() string                { return v.brand }
func (v *Vehicle) Model() string                { return v.model }
func (v *Vehicle) Color() string                { return v.color }
func (v *Vehicle) LicencePlate() string         { return v.licencePlate }
func (v *Vehicle) FuelLevel() float64           { return v.fuelLevel }
func (v *Vehicle) Odometer() float64            { return v.odometer }
func (v *Vehicle) LastServiceOdometer() float64 { return v.lastServiceOdometer }
func (v *Vehicle) PricePerDay() money.Money     { return v.pricePerDay }
func (v *Vehicle) Status() Status               { return v.status }
