package casefile

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Reference is a personal reference listed on a defendant's file.
type Reference struct {
	shared.TenantAggregateRoot
	PersonID     uuid.UUID
	Name         string
	Relationship string
	Phone        string
	Notes        string
}

// NewReference creates a new reference for a person
func NewReference(tenantID, personID uuid.UUID, name, relationship, phone, notes string) (*Reference, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "reference name is required")
	}

	return &Reference{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Name:                name,
		Relationship:        relationship,
		Phone:               phone,
		Notes:               notes,
	}, nil
}

// Update replaces the reference's editable fields
func (r *Reference) Update(name, relationship, phone, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "reference name is required")
	}
	r.Name = name
	r.Relationship = relationship
	r.Phone = phone
	r.Notes = notes
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (r *Reference) GetPersonID() uuid.UUID {
	return r.PersonID
}
