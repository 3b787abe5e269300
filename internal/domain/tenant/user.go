package tenant

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an authenticated identity. Each user is linked to at most one
// tenant; a user without a tenant can authenticate but every scoped
// request is rejected with a forbidden outcome. Tenants are never
// auto-provisioned on first login.
type User struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	TenantID     *uuid.UUID
	Active       bool
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "username is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      string(hash),
		Active:            true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AssignTenant links the user to a tenant
func (u *User) AssignTenant(tenantID uuid.UUID) {
	u.TenantID = &tenantID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// HasTenant reports whether the user is linked to a tenant
func (u *User) HasTenant() bool {
	return u.TenantID != nil
}
