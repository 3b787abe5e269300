package tenantapp

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// TenantService handles tenant profile operations
type TenantService struct {
	tenantRepo tenant.Repository
	publisher  shared.EventPublisher
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenant.Repository, publisher shared.EventPublisher) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		publisher:  publisher,
	}
}

// Get retrieves a tenant's profile
func (s *TenantService) Get(ctx context.Context, tenantID uuid.UUID) (*tenant.Tenant, error) {
	return s.tenantRepo.FindByID(ctx, tenantID)
}

// Create provisions a new tenant
func (s *TenantService) Create(ctx context.Context, name, contactEmail, phone, address string) (*tenant.Tenant, error) {
	t, err := tenant.NewTenant(name, contactEmail, phone, address)
	if err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, t)
	return t, nil
}

// UpdateProfile updates the tenant's own profile
func (s *TenantService) UpdateProfile(ctx context.Context, tenantID uuid.UUID, name, contactEmail, phone, address string) (*tenant.Tenant, error) {
	t, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := t.UpdateProfile(name, contactEmail, phone, address); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TenantService) publishEvents(ctx context.Context, t *tenant.Tenant) {
	if s.publisher == nil {
		return
	}
	for _, event := range t.GetDomainEvents() {
		_ = s.publisher.Publish(ctx, event)
	}
	t.ClearDomainEvents()
}
