package builder

import (
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationBuilder assembles factory input. Defaults price at 45.00 + 30.00 + 10.00
// per day over three days, a 255.00 subtotal.
type ReservationBuilder struct {
	Vehicle        *VehicleBuilder
	Customer       *CustomerBuilder
	InsuranceTier  catalog.InsuranceTier
	AddOns         []catalog.AddOn
	PickupBranchID uuid.UUID
	ReturnBranchID uuid.UUID
	PickupDate     time.Time
	ReturnDate     time.Time
	CompletedCount int
}

func NewReservationBuilder() *ReservationBuilder {
	tier, _ := catalog.NewInsuranceTier(uuid.New(), "Premium", "Full coverage", money.MustParse("30.00"))
	gps, _ := catalog.NewAddOn(uuid.New(), "GPS", "Navigation device", money.MustParse("10.00"))
	pickup := time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)
	branchID := uuid.New()

	return &ReservationBuilder{
		Vehicle:        NewVehicleBuilder(),
		Customer:       NewCustomerBuilder(),
		InsuranceTier:  tier,
		AddOns:         []catalog.AddOn{gps},
		PickupBranchID: branchID,
		ReturnBranchID: branchID,
		PickupDate:     pickup,
		ReturnDate:     pickup.AddDate(0, 0, 3),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDays(days int) *ReservationBuilder {
	b.ReturnDate = b.PickupDate.AddDate(0, 0, days)
	return b
}

func (b *ReservationBuilder) WithCompletedCount(n int) *ReservationBuilder {
	b.CompletedCount = n
	return b
}

// BuildParams builds the vehicle and customer and returns factory input for them.
func (b *ReservationBuilder) BuildParams() (reservation.CreateParams, error) {
	v, err := b.Vehicle.BuildDomain()
	if err != nil {
		return reservation.CreateParams{}, err
	}
	c, err := b.Customer.BuildDomain()
	if err != nil {
		return reservation.CreateParams{}, err
	}
	return reservation.CreateParams{
		Customer:       c,
		Vehicle:        v,
		InsuranceTier:  b.InsuranceTier,
		AddOns:         b.AddOns,
		PickupBranchID: b.PickupBranchID,
		ReturnBranchID: b.ReturnBranchID,
		PickupDate:     b.PickupDate,
		ReturnDate:     b.ReturnDate,
		CompletedCount: b.CompletedCount,
	}, nil
}
