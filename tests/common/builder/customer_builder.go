package builder

import (
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/customer"
	"github.com/PeymanKh/CRFMS/internal/domain/person"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID      uuid.UUID
	Profile person.ProfileParams
	Now     time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Profile: person.ProfileParams{
			FirstName: "Peyman",
			LastName:  "Kh",
			Email:     "customer@example.com",
			Phone:     "+90 555 000 0000",
			Address:   "Istanbul, Turkey",
			BirthDate: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		Now: time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Profile.Email = email
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.ID, b.Profile, b.Now)
}
