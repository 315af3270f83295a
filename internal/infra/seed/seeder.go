package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/branch"
	"github.com/PeymanKh/CRFMS/internal/domain/catalog"
	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/employee"
	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/domain/vehicle"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
	"github.com/PeymanKh/CRFMS/internal/pkg/patch"
	"github.com/PeymanKh/CRFMS/internal/usecase/shared"

	"github.com/google/uuid"
)

// Fleet is what a seeded file turned into, looked up by the names used in the file.
type Fleet struct {
	Branches       map[string]*branch.Branch
	Employees      []*employee.Employee
	VehicleClasses map[string]uuid.UUID
	Vehicles       map[string]uuid.UUID // by licence plate as stored
	AddOns         map[string]uuid.UUID
	InsuranceTiers map[string]uuid.UUID
	Customers      []uuid.UUID
}

type Seeder struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSeeder(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Seeder {
	return &Seeder{uow: uow, clock: clk, logger: logger}
}

// Seed validates every record of f and stores them in one unit of work.
// Nothing is stored when any record is invalid.
func (s *Seeder) Seed(ctx context.Context, f *File) (*Fleet, error) {
	fleet, records, err := s.build(f)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFleet)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, b := range fleet.Branches {
			if err := tx.Branches().Save(ctx, b); err != nil {
				return err
			}
		}
		for _, c := range records.classes {
			if err := tx.Catalog().SaveVehicleClass(ctx, c); err != nil {
				return err
			}
		}
		for _, a := range records.addOns {
			if err := tx.Catalog().SaveAddOn(ctx, a); err != nil {
				return err
			}
		}
		for _, t := range records.tiers {
			if err := tx.Catalog().SaveInsuranceTier(ctx, t); err != nil {
				return err
			}
		}
		for _, v := range records.vehicles {
			if err := tx.Vehicles().Save(ctx, v); err != nil {
				return err
			}
		}
		for _, c := range records.customers {
			if err := tx.Customers().Save(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "store fleet")
	}

	s.logger.InfoContext(ctx, "fleet seeded",
		"branches", len(fleet.Branches),
		"employees", len(fleet.Employees),
		"vehicle_classes", len(fleet.VehicleClasses),
		"vehicles", len(fleet.Vehicles),
		"add_ons", len(fleet.AddOns),
		"insurance_tiers", len(fleet.InsuranceTiers),
		"customers", len(fleet.Customers),
	)
	return fleet, nil
}

type records struct {
	classes   []*catalog.VehicleClass
	addOns    []catalog.AddOn
	tiers     []catalog.InsuranceTier
	vehicles  []*vehicle.Vehicle
	customers []*customer.Customer
}

func (s *Seeder) build(f *File) (*Fleet, *records, error) {
	now := s.clock.Now()
	fleet := &Fleet{
		Branches:       make(map[string]*branch.Branch),
		VehicleClasses: make(map[string]uuid.UUID),
		Vehicles:       make(map[string]uuid.UUID),
		AddOns:         make(map[string]uuid.UUID),
		InsuranceTiers: make(map[string]uuid.UUID),
	}
	rec := &records{}

	for _, spec := range f.Branches {
		if _, dup := fleet.Branches[spec.Key]; dup || spec.Key == "" {
			return nil, nil, errs.Newf("branch key %q is empty or repeated", spec.Key)
		}
		b, err := branch.NewBranch(branch.Params{Name: spec.Name, City: spec.City, Address: spec.Address, Phone: spec.Phone})
		if err != nil {
			return nil, nil, errs.Wrapf(err, "branch %s", spec.Key)
		}
		for _, es := range spec.Employees {
			e, err := newEmployee(es, b.ID(), now)
			if err != nil {
				return nil, nil, errs.Wrapf(err, "branch %s employee %s", spec.Key, es.Email)
			}
			if err := b.AddEmployee(e.ID()); err != nil {
				return nil, nil, err
			}
			fleet.Employees = append(fleet.Employees, e)
		}
		fleet.Branches[spec.Key] = b
	}

	for _, spec := range f.VehicleClasses {
		c, err := catalog.NewVehicleClass(uuid.Nil, spec.Name, spec.Description, spec.BaseDailyRate.Money, spec.Features)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "vehicle class %s", spec.Name)
		}
		fleet.VehicleClasses[c.Name()] = c.ID()
		rec.classes = append(rec.classes, c)
	}

	for _, spec := range f.AddOns {
		a, err := catalog.NewAddOn(uuid.Nil, spec.Name, spec.Description, spec.PricePerDay.Money)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "add-on %s", spec.Name)
		}
		fleet.AddOns[a.Name()] = a.ID()
		rec.addOns = append(rec.addOns, a)
	}

	for _, spec := range f.InsuranceTiers {
		t, err := catalog.NewInsuranceTier(uuid.Nil, spec.Name, spec.Description, spec.PricePerDay.Money)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "insurance tier %s", spec.Name)
		}
		fleet.InsuranceTiers[t.Name()] = t.ID()
		rec.tiers = append(rec.tiers, t)
	}

	for _, spec := range f.Vehicles {
		classID, ok := fleet.VehicleClasses[spec.Class]
		if !ok {
			return nil, nil, errs.Newf("vehicle %s: unknown class %q", spec.LicencePlate, spec.Class)
		}
		b, ok := fleet.Branches[spec.Branch]
		if !ok {
			return nil, nil, errs.Newf("vehicle %s: unknown branch %q", spec.LicencePlate, spec.Branch)
		}
		v, err := vehicle.NewVehicle(vehicle.Params{
			ClassID:             classID,
			CurrentBranchID:     b.ID(),
			Brand:               spec.Brand,
			Model:               spec.Model,
			Color:               spec.Color,
			LicencePlate:        spec.LicencePlate,
			FuelLevel:           spec.FuelLevel,
			Odometer:            spec.Odometer,
			LastServiceOdometer: spec.LastServiceOdometer,
			PricePerDay:         spec.PricePerDay.Money,
		})
		if err != nil {
			return nil, nil, errs.Wrapf(err, "vehicle %s", spec.LicencePlate)
		}
		if _, dup := fleet.Vehicles[v.LicencePlate()]; dup {
			return nil, nil, errs.Newf("vehicle %s is listed twice", v.LicencePlate())
		}
		fleet.Vehicles[v.LicencePlate()] = v.ID()
		rec.vehicles = append(rec.vehicles, v)
	}

	for _, spec := range f.Customers {
		c, err := customer.NewCustomer(uuid.Nil, spec.profile(), now)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "customer %s", spec.Email)
		}
		fleet.Customers = append(fleet.Customers, c.ID())
		rec.customers = append(rec.customers, c)
	}

	return fleet, rec, nil
}

func newEmployee(spec EmployeeSpec, branchID uuid.UUID, now time.Time) (*employee.Employee, error) {
	role, err := employee.NewRole(spec.Role)
	if err != nil {
		return nil, err
	}
	kind, err := employee.NewEmploymentType(spec.EmploymentType)
	if err != nil {
		return nil, err
	}
	return employee.NewEmployee(employee.Params{
		Profile:        spec.profile(),
		BranchID:       branchID,
		Role:           role,
		EmploymentType: kind,
		Salary:         spec.Salary.Money,
		HireDate:       patch.Coalesce(spec.HireDate, clock.DateOf(now)),
	}, now)
}

func (p PersonSpec) profile() person.ProfileParams {
	return person.ProfileParams{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		BirthDate: p.BirthDate,
	}
}
