package casefile

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PersonRepository defines persistence operations for people
type PersonRepository interface {
	// FindByIDForTenant finds a person by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Person, error)
	// SearchForTenant lists people matching q against first/last name,
	// phone and email (case-insensitive substring), ordered by
	// last name then first name, capped at filter.Limit.
	SearchForTenant(ctx context.Context, tenantID uuid.UUID, q string, filter shared.Filter) ([]Person, error)
	// ExistsForTenant reports whether a person exists within a tenant
	ExistsForTenant(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	// Save creates or updates a person
	Save(ctx context.Context, p *Person) error
	// DeleteForTenant deletes a person and its children within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// IndemnitorRepository defines persistence operations for indemnitors
type IndemnitorRepository interface {
	shared.PersonScopedRepository[Indemnitor]
}

// ReferenceRepository defines persistence operations for references
type ReferenceRepository interface {
	shared.PersonScopedRepository[Reference]
}

// CourtDateRepository defines persistence operations for court dates
type CourtDateRepository interface {
	shared.PersonScopedRepository[CourtDate]
	// FindMostRecent returns the person's latest court date by
	// (date, time, id) descending, or shared.ErrNotFound.
	FindMostRecent(ctx context.Context, tenantID, personID uuid.UUID) (*CourtDate, error)
}

// CheckInRepository defines persistence operations for check-ins
type CheckInRepository interface {
	shared.PersonScopedRepository[CheckIn]
	// FindLatest returns the person's latest check-in by
	// (created_at, id) descending, or shared.ErrNotFound.
	FindLatest(ctx context.Context, tenantID, personID uuid.UUID) (*CheckIn, error)
}
