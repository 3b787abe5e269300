package tenant

import (
	"github.com/bondtrack/backend/internal/domain/shared"
)

// Event types for the tenant aggregate
const (
	EventTypeTenantCreated = "tenant.created"
	EventTypeTenantUpdated = "tenant.updated"
)

// TenantCreatedEvent is published when a tenant is created
type TenantCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTenantCreatedEvent creates a new tenant created event
func NewTenantCreatedEvent(t *Tenant) *TenantCreatedEvent {
	return &TenantCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantCreated, "Tenant", t.ID, t.ID),
		Name:            t.Name,
	}
}
