package casefile

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Indemnitor guarantees a bail bond on behalf of a defendant.
type Indemnitor struct {
	shared.TenantAggregateRoot
	PersonID     uuid.UUID
	Name         string
	Relationship string
	Phone        string
	Email        string
	Address      string
}

// NewIndemnitor creates a new indemnitor for a person
func NewIndemnitor(tenantID, personID uuid.UUID, name, relationship, phone, email, address string) (*Indemnitor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "indemnitor name is required")
	}

	return &Indemnitor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Name:                name,
		Relationship:        relationship,
		Phone:               phone,
		Email:               email,
		Address:             address,
	}, nil
}

// Update replaces the indemnitor's editable fields
func (i *Indemnitor) Update(name, relationship, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "indemnitor name is required")
	}
	i.Name = name
	i.Relationship = relationship
	i.Phone = phone
	i.Email = email
	i.Address = address
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (i *Indemnitor) GetPersonID() uuid.UUID {
	return i.PersonID
}
