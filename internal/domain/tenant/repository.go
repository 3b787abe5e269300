package tenant

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for tenants
type Repository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	// Save creates or updates a tenant
	Save(ctx context.Context, t *Tenant) error
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByUsername finds a user by its (lowercased) username
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Save creates or updates a user
	Save(ctx context.Context, u *User) error
}
