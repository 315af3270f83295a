package catalog

import (
	"strings"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errs.Validation("catalog item name cannot be empty")
	ErrNameTooLong       = errs.Validation("catalog item name is too long (max 100 characters)")
	ErrEmptyDescription  = errs.Validation("catalog item description cannot be empty")
	ErrNegativeDailyRate = errs.Validation("daily rate cannot be negative")
	ErrEmptyFeature      = errs.Validation("vehicle class feature cannot be empty")
)

const MaxNameLength = 100

// VehicleClass groups vehicles sharing a base daily rate and feature set.
type VehicleClass struct {
	id            uuid.UUID
	name          string
	description   string
	baseDailyRate money.Money
	features      []string
}

func NewVehicleClass(id uuid.UUID, name, description string, baseDailyRate money.Money, features []string) (*VehicleClass, error) {
	name, description, err := validateNameAndDescription(name, description)
	if err != nil {
		return nil, err
	}
	if baseDailyRate.IsNegative() {
		return nil, ErrNegativeDailyRate
	}

	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, ErrEmptyFeature
		}
		cleaned = append(cleaned, f)
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &VehicleClass{
		id:            id,
		name:          name,
		description:   description,
		baseDailyRate: baseDailyRate,
		features:      cleaned,
	}, nil
}

func (c *VehicleClass) ID() uuid.UUID              { return c.id }
func (c *VehicleClass) Name() string               { return c.name }
func (c *VehicleClass) Description() string        { return c.description }
func (c *VehicleClass) BaseDailyRate() money.Money { return c.baseDailyRate }
func (c *VehicleClass) Features() []string         { return append([]string(nil), c.features...) }

// AddOn is an optional extra billed per rental day (GPS, child seat, ...).
type AddOn struct {
	id          uuid.UUID
	name        string
	description string
	pricePerDay money.Money
}

func NewAddOn(id uuid.UUID, name, description string, pricePerDay money.Money) (AddOn, error) {
	name, description, err := validateNameAndDescription(name, description)
	if err != nil {
		return AddOn{}, err
	}
	if pricePerDay.IsNegative() {
		return AddOn{}, ErrNegativeDailyRate
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return AddOn{id: id, name: name, description: description, pricePerDay: pricePerDay}, nil
}

func (a AddOn) ID() uuid.UUID            { return a.id }
func (a AddOn) Name() string             { return a.name }
func (a AddOn) Description() string      { return a.description }
func (a AddOn) PricePerDay() money.Money { return a.pricePerDay }

type InsuranceTier struct {
	id          uuid.UUID
	name        string
	description string
	pricePerDay money.Money
}

func NewInsuranceTier(id uuid.UUID, name, description string, pricePerDay money.Money) (InsuranceTier, error) {
	name, description, err := validateNameAndDescription(name, description)
	if err != nil {
		return InsuranceTier{}, err
	}
	if pricePerDay.IsNegative() {
		return InsuranceTier{}, ErrNegativeDailyRate
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return InsuranceTier{id: id, name: name, description: description, pricePerDay: pricePerDay}, nil
}

func (t InsuranceTier) ID() uuid.UUID            { return t.id }
func (t InsuranceTier) Name() string             { return t.name }
func (t InsuranceTier) Description() string      { return t.description }
func (t InsuranceTier) PricePerDay() money.Money { return t.pricePerDay }
func (t InsuranceTier) IsZero() bool             { return t.id == uuid.Nil }

func validateNameAndDescription(name, description string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", "", ErrNameTooLong
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", "", ErrEmptyDescription
	}
	return name, description, nil
}
