package employee

import (
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole           = errs.Validation("invalid employee role")
	ErrInvalidEmploymentType = errs.Validation("invalid employment type")
	ErrMissingBranch         = errs.Validation("employee branch is required")
	ErrNonPositiveSalary     = errs.Validation("salary must be positive")
	ErrMissingHireDate       = errs.Validation("hire date is required")
	ErrHireDateInFuture      = errs.Validation("hire date cannot be in the future")
)

type Params struct {
	ID             uuid.UUID
	Profile        person.ProfileParams
	BranchID       uuid.UUID
	Role           Role
	EmploymentType EmploymentType
	Salary         money.Money
	HireDate       time.Time
}

type Employee struct {
	id             uuid.UUID
	profile        person.Profile
	branchID       uuid.UUID
	role           Role
	employmentType EmploymentType
	salary         money.Money
	hireDate       time.Time
	isActive       bool
}

func NewEmployee(p Params, now time.Time) (*Employee, error) {
	profile, err := person.NewProfile(p.Profile, now)
	if err != nil {
		return nil, err
	}

	switch {
	case p.BranchID == uuid.Nil:
		return nil, ErrMissingBranch
	case !p.Role.IsValid():
		return nil, ErrInvalidRole
	case !p.EmploymentType.IsValid():
		return nil, ErrInvalidEmploymentType
	case p.Salary.IsNegative() || p.Salary.IsZero():
		return nil, ErrNonPositiveSalary
	case p.HireDate.IsZero():
		return nil, ErrMissingHireDate
	case clock.DateOf(p.HireDate).After(clock.DateOf(now)):
		return nil, ErrHireDateInFuture
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Employee{
		id:             id,
		profile:        profile,
		branchID:       p.BranchID,
		role:           p.Role,
		employmentType: p.EmploymentType,
		salary:         p.Salary,
		hireDate:       clock.DateOf(p.HireDate),
		isActive:       true,
	}, nil
}

func (e *Employee) Deactivate() {
	e.isActive = false
}

func (e *Employee) WorkSchedule() WorkSchedule {
	return scheduleFor(e.employmentType)
}

func (e *Employee) ID() uuid.UUID                  { return e.id }
func (e *Employee) Profile() person.Profile        { return e.profile }
func (e *Employee) FullName() string               { return e.profile.FullName() }
func (e *Employee) BranchID() uuid.UUID            { return e.branchID }
func (e *Employee) Role() Role                     { return e.role }
func (e *Employee) EmploymentType() EmploymentType { return e.employmentType }
func (e *Employee) Salary() money.Money            { return e.salary }
func (e *Employee) HireDate() time.Time            { return e.hireDate }
func (e *Employee) IsActive() bool                 { return e.isActive }
