package seed

import (
	_ "embed"
	"os"
	"strings"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed fleet.yaml
var defaultFleet []byte

var ErrInvalidFleet = errs.New("invalid fleet file")

type File struct {
	Branches       []BranchSpec  `yaml:"branches"`
	VehicleClasses []ClassSpec   `yaml:"vehicle_classes"`
	Vehicles       []VehicleSpec `yaml:"vehicles"`
	AddOns         []PricedSpec  `yaml:"add_ons"`
	InsuranceTiers []PricedSpec  `yaml:"insurance_tiers"`
	Customers      []PersonSpec  `yaml:"customers"`
}

type BranchSpec struct {
	Key       string         `yaml:"key"`
	Name      string         `yaml:"name"`
	City      string         `yaml:"city"`
	Address   string         `yaml:"address"`
	Phone     string         `yaml:"phone"`
	Employees []EmployeeSpec `yaml:"employees"`
}

type PersonSpec struct {
	FirstName string    `yaml:"first_name"`
	LastName  string    `yaml:"last_name"`
	Email     string    `yaml:"email"`
	Phone     string    `yaml:"phone"`
	Address   string    `yaml:"address"`
	BirthDate time.Time `yaml:"birth_date"`
}

type EmployeeSpec struct {
	PersonSpec     `yaml:",inline"`
	Role           string `yaml:"role"`
	EmploymentType string `yaml:"employment_type"`
	Salary         Amount `yaml:"salary"`
	// HireDate defaults to the seeding day.
	HireDate *time.Time `yaml:"hire_date"`
}

type ClassSpec struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	BaseDailyRate Amount   `yaml:"base_daily_rate"`
	Features      []string `yaml:"features"`
}

type VehicleSpec struct {
	Class               string  `yaml:"class"`
	Branch              string  `yaml:"branch"`
	Brand               string  `yaml:"brand"`
	Model               string  `yaml:"model"`
	Color               string  `yaml:"color"`
	LicencePlate        string  `yaml:"licence_plate"`
	FuelLevel           float64 `yaml:"fuel_level"`
	Odometer            float64 `yaml:"odometer"`
	LastServiceOdometer float64 `yaml:"last_service_odometer"`
	PricePerDay         Amount  `yaml:"price_per_day"`
}

// PricedSpec describes an add-on or an insurance tier.
type PricedSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PricePerDay Amount `yaml:"price_per_day"`
}

// Amount decodes a decimal string such as "45.00" into Money.
type Amount struct {
	money.Money
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	m, err := money.Parse(node.Value)
	if err != nil {
		return errs.Wrapf(err, "line %d", node.Line)
	}
	a.Money = m
	return nil
}

// Load reads the fleet file at path. An empty path loads the built-in demo fleet.
func Load(path string) (*File, error) {
	data := defaultFleet
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "read fleet file %s", path)
		}
	}
	return Parse(data)
}

// Parse decodes a fleet document after expanding ${VAR} references. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode fleet file"), ErrInvalidFleet)
	}
	return &f, nil
}
