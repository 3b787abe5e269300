package casefile

import (
	"regexp"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CourtDate is a scheduled court appearance for a person. The most
// recent court date is the one with the greatest (date, time, id)
// tuple; time may be empty when the docket only lists a day.
type CourtDate struct {
	shared.TenantAggregateRoot
	PersonID  uuid.UUID
	Date      time.Time
	TimeOfDay string
	Location  string
	Room      string
	Notes     string
}

// NewCourtDate creates a new court date for a person. timeOfDay is
// "HH:MM" in 24-hour form, or empty.
func NewCourtDate(tenantID, personID uuid.UUID, date time.Time, timeOfDay, location, room, notes string) (*CourtDate, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "court date is required")
	}
	if timeOfDay != "" && !timeOfDayRe.MatchString(timeOfDay) {
		return nil, shared.NewDomainError("INVALID_INPUT", "time must be HH:MM")
	}

	return &CourtDate{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Date:                truncateToDate(date),
		TimeOfDay:           timeOfDay,
		Location:            location,
		Room:                room,
		Notes:               notes,
	}, nil
}

// Update replaces the court date's editable fields
func (cd *CourtDate) Update(date time.Time, timeOfDay, location, room, notes string) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "court date is required")
	}
	if timeOfDay != "" && !timeOfDayRe.MatchString(timeOfDay) {
		return shared.NewDomainError("INVALID_INPUT", "time must be HH:MM")
	}
	cd.Date = truncateToDate(date)
	cd.TimeOfDay = timeOfDay
	cd.Location = location
	cd.Room = room
	cd.Notes = notes
	cd.UpdatedAt = time.Now()
	cd.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (cd *CourtDate) GetPersonID() uuid.UUID {
	return cd.PersonID
}

// After reports whether cd sorts after other by (date, time, id).
// UUIDs stand in for the serial identifier as the final tiebreaker.
func (cd *CourtDate) After(other *CourtDate) bool {
	if !cd.Date.Equal(other.Date) {
		return cd.Date.After(other.Date)
	}
	if cd.TimeOfDay != other.TimeOfDay {
		return cd.TimeOfDay > other.TimeOfDay
	}
	return cd.ID.String() > other.ID.String()
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
