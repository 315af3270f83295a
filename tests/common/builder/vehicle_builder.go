package builder

import (
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	Params vehicle.Params
	Status vehicle.Status
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Params: vehicle.Params{
			ClassID:             uuid.New(),
			CurrentBranchID:     uuid.New(),
			Brand:               "Volkswagen",
			Model:               "Golf",
			Color:               "Gray",
			LicencePlate:        "CMP-001",
			FuelLevel:           0.7,
			Odometer:            22_000,
			LastServiceOdometer: 20_000,
			PricePerDay:         money.MustParse("45.00"),
		},
		Status: vehicle.StatusAvailable,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithPricePerDay(amount string) *VehicleBuilder {
	b.Params.PricePerDay = money.MustParse(amount)
	return b
}

func (b *VehicleBuilder) WithStatus(status vehicle.Status) *VehicleBuilder {
	b.Status = status
	return b
}

// BuildDomain validates through NewVehicle, then forces Status when it differs from AVAILABLE.
func (b *VehicleBuilder) BuildDomain() (*vehicle.Vehicle, error) {
	v, err := vehicle.NewVehicle(b.Params)
	if err != nil || b.Status == vehicle.StatusAvailable {
		return v, err
	}
	p := b.Params
	p.ID = v.ID()
	p.LicencePlate = v.LicencePlate()
	return vehicle.ReconstructVehicle(p, b.Status), nil
}
