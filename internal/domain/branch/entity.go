package branch

import (
	"slices"
	"strings"

	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errs.Validation("branch name cannot be empty")
	ErrEmptyCity         = errs.Validation("branch city cannot be empty")
	ErrEmptyAddress      = errs.Validation("branch address cannot be empty")
	ErrEmptyPhone        = errs.Validation("branch phone cannot be empty")
	ErrMissingEmployeeID = errs.Validation("employee id is required")
	ErrEmployeeExists    = errs.Validation("employee already assigned to branch")
	ErrEmployeeNotFound  = errs.Validation("employee not assigned to branch")
)

type Params struct {
	ID      uuid.UUID
	Name    string
	City    string
	Address string
	Phone   string
}

type Branch struct {
	id          uuid.UUID
	name        string
	city        string
	address     string
	phone       string
	employeeIDs []uuid.UUID
}

func NewBranch(p Params) (*Branch, error) {
	name := strings.TrimSpace(p.Name)
	city := strings.TrimSpace(p.City)
	address := strings.TrimSpace(p.Address)
	phone := strings.TrimSpace(p.Phone)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case city == "":
		return nil, ErrEmptyCity
	case address == "":
		return nil, ErrEmptyAddress
	case phone == "":
		return nil, ErrEmptyPhone
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Branch{id: id, name: name, city: city, address: address, phone: phone}, nil
}

func ReconstructBranch(p Params, employeeIDs []uuid.UUID) *Branch {
	return &Branch{
		id:          p.ID,
		name:        p.Name,
		city:        p.City,
		address:     p.Address,
		phone:       p.Phone,
		employeeIDs: slices.Clone(employeeIDs),
	}
}

func (b *Branch) Params() Params {
	return Params{ID: b.id, Name: b.name, City: b.city, Address: b.address, Phone: b.phone}
}

func (b *Branch) AddEmployee(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrMissingEmployeeID
	}
	if b.HasEmployee(id) {
		return ErrEmployeeExists
	}
	b.employeeIDs = append(b.employeeIDs, id)
	return nil
}

func (b *Branch) RemoveEmployee(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrMissingEmployeeID
	}
	i := slices.Index(b.employeeIDs, id)
	if i < 0 {
		return ErrEmployeeNotFound
	}
	b.employeeIDs = slices.Delete(b.employeeIDs, i, i+1)
	return nil
}

func (b *Branch) HasEmployee(id uuid.UUID) bool {
	return id != uuid.Nil && slices.Contains(b.employeeIDs, id)
}

func (b *Branch) ID() uuid.UUID            { return b.id }
func (b *Branch) Name() string             { return b.name }
func (b *Branch) City() string             { return b.city }
func (b *Branch) Address() string          { return b.address }
func (b *Branch) Phone() string            { return b.phone }
func (b *Branch) EmployeeIDs() []uuid.UUID { return slices.Clone(b.employeeIDs) }
