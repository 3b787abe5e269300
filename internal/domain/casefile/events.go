package casefile

import (
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for case-file aggregates
const (
	EventTypePersonCreated = "casefile.person.created"
	EventTypePersonUpdated = "casefile.person.updated"
	EventTypePersonDeleted = "casefile.person.deleted"

	EventTypeIndemnitorsChanged = "casefile.indemnitors.changed"
	EventTypeReferencesChanged  = "casefile.references.changed"
	EventTypeCourtDatesChanged  = "casefile.court_dates.changed"
	EventTypeCheckInsChanged    = "casefile.checkins.changed"
)

// Presentation refresh signal names. These are a wire contract with the
// frontend (HX-Trigger); renaming one breaks partial refresh.
const (
	SignalPeopleListRefresh = "people_list_refresh"
	SignalModalClose        = "modal_close"
	SignalCourtDatesChanged = "court_dates_changed"
	SignalCheckInsChanged   = "checkins_changed"
)

// PersonChangedEvent is published when a person is created, updated or
// deleted.
type PersonChangedEvent struct {
	shared.BaseDomainEvent
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewPersonChangedEvent creates a person lifecycle event
func NewPersonChangedEvent(eventType string, p *Person) *PersonChangedEvent {
	return &PersonChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Person", p.ID, p.TenantID),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
	}
}

// RefreshSignals implements shared.RefreshSignaler
func (e *PersonChangedEvent) RefreshSignals() []string {
	return []string{SignalPeopleListRefresh, SignalModalClose}
}

// SectionChangedEvent is published when a person's child section
// (indemnitors, references, court dates, check-ins) is mutated.
type SectionChangedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID `json:"person_id"`
	signals  []string
}

// NewSectionChangedEvent creates a section change event carrying the
// refresh signals for that section.
func NewSectionChangedEvent(eventType, aggType string, aggID, tenantID, personID uuid.UUID, signals ...string) *SectionChangedEvent {
	return &SectionChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, aggType, aggID, tenantID),
		PersonID:        personID,
		signals:         append([]string{SignalModalClose}, signals...),
	}
}

// RefreshSignals implements shared.RefreshSignaler
func (e *SectionChangedEvent) RefreshSignals() []string {
	return e.signals
}
