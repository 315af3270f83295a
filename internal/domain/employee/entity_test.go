package employee_test

import (
	"testing"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/employee"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/domain/person"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC)

func validParams() employee.Params {
	return employee.Params{
		Profile: person.ProfileParams{
			FirstName: "Ayse",
			LastName:  "Demir",
			Email:     "ayse@crfms.io",
			Phone:     "+90 555 111 2233",
			Address:   "Istanbul",
			BirthDate: time.Date(1992, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		BranchID:       uuid.New(),
		Role:           employee.RoleAgent,
		EmploymentType: employee.FullTime,
		Salary:         money.MustParse("22000"),
		HireDate:       time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewEmployee(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*employee.Params)
		errIs  error
	}{
		{name: "basic success case", mutate: func(*employee.Params) {}},
		{name: "missing branch", mutate: func(p *employee.Params) { p.BranchID = uuid.Nil }, errIs: employee.ErrMissingBranch},
		{name: "unknown role", mutate: func(p *employee.Params) { p.Role = "intern" }, errIs: employee.ErrInvalidRole},
		{name: "unknown employment type", mutate: func(p *employee.Params) { p.EmploymentType = "seasonal" }, errIs: employee.ErrInvalidEmploymentType},
		{name: "zero salary", mutate: func(p *employee.Params) { p.Salary = money.NewMoney(0) }, errIs: employee.ErrNonPositiveSalary},
		{name: "missing hire date", mutate: func(p *employee.Params) { p.HireDate = time.Time{} }, errIs: employee.ErrMissingHireDate},
		{name: "hire date tomorrow", mutate: func(p *employee.Params) { p.HireDate = now.AddDate(0, 0, 1) }, errIs: employee.ErrHireDateInFuture},
		{name: "bad email", mutate: func(p *employee.Params) { p.Profile.Email = "ayse" }, errIs: person.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validParams()
			c.mutate(&p)
			e, err := employee.NewEmployee(p, now)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.True(t, e.IsActive())
				assert.Equal(t, "Ayse Demir", e.FullName())
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestWorkSchedule(t *testing.T) {
	schedule := func(kind employee.EmploymentType) employee.WorkSchedule {
		p := validParams()
		p.EmploymentType = kind
		e, err := employee.NewEmployee(p, now)
		require.NoError(t, err)
		return e.WorkSchedule()
	}

	t.Run("full time", func(t *testing.T) {
		s := schedule(employee.FullTime)
		assert.Equal(t, 40, s.HoursPerWeek)
		shift, ok := s.On(time.Tuesday)
		require.True(t, ok)
		assert.Equal(t, "09:00-17:00", shift.String())
		_, ok = s.On(time.Saturday)
		assert.False(t, ok)
	})

	t.Run("part time", func(t *testing.T) {
		s := schedule(employee.PartTime)
		assert.Equal(t, 20, s.HoursPerWeek)
		_, ok := s.On(time.Tuesday)
		assert.False(t, ok)
		shift, ok := s.On(time.Saturday)
		require.True(t, ok)
		assert.Equal(t, 5, shift.Hours())
		assert.Equal(t, []string{
			"monday: 09:00-13:00",
			"tuesday: off",
			"wednesday: 09:00-13:00",
			"thursday: off",
			"friday: 09:00-13:00",
			"saturday: 10:00-15:00",
			"sunday: off",
		}, s.Describe())
	})

	t.Run("contract", func(t *testing.T) {
		s := schedule(employee.Contract)
		assert.Equal(t, 40, s.HoursPerWeek)
		shift, ok := s.On(time.Friday)
		require.True(t, ok)
		assert.Equal(t, "10:00-18:00", shift.String())
	})
}
