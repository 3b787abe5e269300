package casefile

import (
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CheckInMethod is how a defendant checked in
type CheckInMethod string

const (
	CheckInMethodInPerson CheckInMethod = "in_person"
	CheckInMethodPhone    CheckInMethod = "phone"
	CheckInMethodWeb      CheckInMethod = "web"
)

// IsValid checks if the check-in method is valid
func (m CheckInMethod) IsValid() bool {
	switch m {
	case CheckInMethodInPerson, CheckInMethodPhone, CheckInMethodWeb:
		return true
	}
	return false
}

// CheckIn is a timestamped check-in event for a person. Recency is
// determined by (created_at, id) descending.
type CheckIn struct {
	shared.TenantAggregateRoot
	PersonID uuid.UUID
	Method   CheckInMethod
	Notes    string
}

// NewCheckIn records a check-in for a person
func NewCheckIn(tenantID, personID uuid.UUID, method CheckInMethod, notes string) (*CheckIn, error) {
	if method == "" {
		method = CheckInMethodInPerson
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invalid check-in method")
	}

	return &CheckIn{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Method:              method,
		Notes:               notes,
	}, nil
}

// Update replaces the check-in's editable fields
func (ci *CheckIn) Update(method CheckInMethod, notes string) error {
	if method == "" {
		method = CheckInMethodInPerson
	}
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "invalid check-in method")
	}
	ci.Method = method
	ci.Notes = notes
	ci.UpdatedAt = time.Now()
	ci.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (ci *CheckIn) GetPersonID() uuid.UUID {
	return ci.PersonID
}

// DaysSince returns whole days elapsed since the check-in was recorded
func (ci *CheckIn) DaysSince(now time.Time) int {
	return int(now.Sub(ci.CreatedAt).Hours() / 24)
}
