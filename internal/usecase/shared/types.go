package shared

import (
	"context"

	"github.com/PeymanKh/CRFMS/internal/domain/branch"
	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn with exclusive write access. Staged writes are committed
	// only when fn returns nil.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives consistent read-only access outside a unit of work.
	Reads() Reads
}

type Tx interface {
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Reservations() ReservationRepository
	Branches() BranchRepository
	Catalog() CatalogRepository
}

// Reads is the read side used by queries. Entities returned are detached copies.
type Reads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*reservation.Reservation, error)
	CompletedCount(ctx context.Context, customerID uuid.UUID) (int, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	Vehicles(ctx context.Context) ([]*vehicle.Vehicle, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	Save(ctx context.Context, v *vehicle.Vehicle) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Save(ctx context.Context, c *customer.Customer) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, r *reservation.Reservation) error
	// CompletedCount counts the customer's reservations in COMPLETED status.
	CompletedCount(ctx context.Context, customerID uuid.UUID) (int, error)
}

type BranchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*branch.Branch, error)
	Save(ctx context.Context, b *branch.Branch) error
}

type CatalogRepository interface {
	VehicleClassByID(ctx context.Context, id uuid.UUID) (*catalog.VehicleClass, error)
	InsuranceTierByID(ctx context.Context, id uuid.UUID) (catalog.InsuranceTier, error)
	AddOnByID(ctx context.Context, id uuid.UUID) (catalog.AddOn, error)
	SaveVehicleClass(ctx context.Context, c *catalog.VehicleClass) error
	SaveInsuranceTier(ctx context.Context, t catalog.InsuranceTier) error
	SaveAddOn(ctx context.Context, a catalog.AddOn) error
}
