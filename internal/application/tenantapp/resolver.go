package tenantapp

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// Resolver maps an authenticated user to their tenant. The lookup goes
// to the user record on every call, not the token claims, so revoking
// or reassigning a tenant takes effect without waiting for token
// expiry. Tenants are never auto-provisioned here.
type Resolver struct {
	userRepo tenant.UserRepository
}

// NewResolver creates a new tenant Resolver
func NewResolver(userRepo tenant.UserRepository) *Resolver {
	return &Resolver{userRepo: userRepo}
}

// Resolve returns the tenant ID for a user. A user that exists but has
// no tenant yields shared.ErrNoTenant; callers translate that into a
// forbidden response rather than proceeding unscoped.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == shared.ErrNotFound {
			return uuid.Nil, shared.ErrUnauthorized
		}
		return uuid.Nil, err
	}

	if !user.Active {
		return uuid.Nil, shared.ErrUnauthorized
	}
	if !user.HasTenant() {
		return uuid.Nil, shared.ErrNoTenant
	}
	return *user.TenantID, nil
}
