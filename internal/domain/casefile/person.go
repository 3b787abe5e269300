package casefile

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Person is a defendant/client. It is the parent of every case-file
// child (indemnitors, references, court dates, check-ins) as well as
// the billing aggregates (bonds, invoices, receipts).
type Person struct {
	shared.TenantAggregateRoot
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Notes     string
}

// NewPerson creates a new person for a tenant
func NewPerson(tenantID uuid.UUID, firstName, lastName, phone, email, address, notes string) (*Person, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "first and last name are required")
	}

	p := &Person{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FirstName:           firstName,
		LastName:            lastName,
		Phone:               phone,
		Email:               email,
		Address:             address,
		Notes:               notes,
	}
	p.AddDomainEvent(NewPersonChangedEvent(EventTypePersonCreated, p))
	return p, nil
}

// Update replaces the person's editable fields. Edit forms submit the
// full field set, so this is a whole-record replace, not a patch.
func (p *Person) Update(firstName, lastName, phone, email, address, notes string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return shared.NewDomainError("INVALID_INPUT", "first and last name are required")
	}

	p.FirstName = firstName
	p.LastName = lastName
	p.Phone = phone
	p.Email = email
	p.Address = address
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewPersonChangedEvent(EventTypePersonUpdated, p))
	return nil
}

// FullName returns "First Last"
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
