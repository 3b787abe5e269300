package tenant

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
)

// Tenant is a bonding agency. It is the ownership root for every other
// aggregate in the system; all of them carry its ID and every query is
// scoped by it.
type Tenant struct {
	shared.BaseAggregateRoot
	Name         string
	ContactEmail string
	Phone        string
	Address      string
}

// NewTenant creates a new tenant
func NewTenant(name, contactEmail, phone, address string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant name is required")
	}

	t := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactEmail:      contactEmail,
		Phone:             phone,
		Address:           address,
	}
	t.AddDomainEvent(NewTenantCreatedEvent(t))
	return t, nil
}

// UpdateProfile replaces the tenant's editable fields
func (t *Tenant) UpdateProfile(name, contactEmail, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "tenant name is required")
	}
	t.Name = name
	t.ContactEmail = contactEmail
	t.Phone = phone
	t.Address = address
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}
