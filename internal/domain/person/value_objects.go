package person

import (
	"regexp"
	"strings"
	"time"

	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
)

const AdultAge = 18

var (
	ErrInvalidEmail     = errs.Validation("invalid email format")
	ErrEmptyFirstName   = errs.Validation("first name cannot be empty")
	ErrEmptyLastName    = errs.Validation("last name cannot be empty")
	ErrEmptyPhone       = errs.Validation("phone number cannot be empty")
	ErrEmptyAddress     = errs.Validation("address cannot be empty")
	ErrMissingBirthDate = errs.Validation("birth date is required")
	ErrUnderage         = errs.Validation("person must be at least 18 years old")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

type ProfileParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	BirthDate time.Time
}

// Profile holds the contact details shared by customers and employees.
type Profile struct {
	firstName string
	lastName  string
	email     Email
	phone     string
	address   string
	birthDate time.Time
}

// NewProfile validates p; the person must be an adult on today.
func NewProfile(p ProfileParams, today time.Time) (Profile, error) {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	phone := strings.TrimSpace(p.Phone)
	address := strings.TrimSpace(p.Address)

	switch {
	case first == "":
		return Profile{}, ErrEmptyFirstName
	case last == "":
		return Profile{}, ErrEmptyLastName
	case phone == "":
		return Profile{}, ErrEmptyPhone
	case address == "":
		return Profile{}, ErrEmptyAddress
	case p.BirthDate.IsZero():
		return Profile{}, ErrMissingBirthDate
	}

	email, err := NewEmail(p.Email)
	if err != nil {
		return Profile{}, err
	}
	birth := clock.DateOf(p.BirthDate)
	if Age(birth, today) < AdultAge {
		return Profile{}, ErrUnderage
	}

	return Profile{
		firstName: first,
		lastName:  last,
		email:     email,
		phone:     phone,
		address:   address,
		birthDate: birth,
	}, nil
}

// ReconstructProfile skips validation; used when rebuilding from storage.
func ReconstructProfile(p ProfileParams) Profile {
	return Profile{
		firstName: p.FirstName,
		lastName:  p.LastName,
		email:     Email{value: p.Email},
		phone:     p.Phone,
		address:   p.Address,
		birthDate: p.BirthDate,
	}
}

// Age counts full years between birth and on.
func Age(birth, on time.Time) int {
	birth, on = clock.DateOf(birth), clock.DateOf(on)
	years := on.Year() - birth.Year()
	if !sameOrLaterMonthDay(on, birth) {
		years--
	}
	return years
}

func sameOrLaterMonthDay(on, birth time.Time) bool {
	if on.Month() != birth.Month() {
		return on.Month() > birth.Month()
	}
	return on.Day() >= birth.Day()
}

func (p Profile) FirstName() string    { return p.firstName }
func (p Profile) LastName() string     { return p.lastName }
func (p Profile) FullName() string     { return p.firstName + " " + p.lastName }
func (p Profile) Email() Email         { return p.email }
func (p Profile) Phone() string        { return p.phone }
func (p Profile) Address() string      { return p.address }
func (p Profile) BirthDate() time.Time { return p.birthDate }

func (p Profile) Params() ProfileParams {
	return ProfileParams{
		FirstName: p.firstName,
		LastName:  p.lastName,
		Email:     p.email.Value(),
		Phone:     p.phone,
		Address:   p.address,
		BirthDate: p.birthDate,
	}
}
