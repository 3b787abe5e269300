package shared

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository is the base interface for tenant-scoped repositories.
// The tenant ID is an explicit parameter of every call; there is no
// ambient tenant state anywhere in the data-access layer.
type TenantRepository[T any] interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// PersonScopedRepository is implemented by repositories whose entities
// hang off a person (indemnitors, references, court dates, check-ins,
// bonds, invoices). Listing always requires both scopes.
type PersonScopedRepository[T any] interface {
	TenantRepository[T]
	ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]T, error)
}

// Filter represents query filter options for list endpoints
type Filter struct {
	Limit    int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Limit:    200,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}
