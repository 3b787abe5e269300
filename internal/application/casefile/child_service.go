package casefile

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// childAggregate constrains the pointer form of a person-scoped
// aggregate.
type childAggregate[T any] interface {
	*T
	GetID() uuid.UUID
	GetTenantID() uuid.UUID
	GetPersonID() uuid.UUID
}

// ChildService implements the CRUD shape shared by every person child
// section. Each call guards two scopes: the tenant owns the person and
// the person owns the child. A miss on either is reported as not found,
// so a caller probing another tenant's IDs learns nothing.
type ChildService[T any, PT childAggregate[T]] struct {
	repo       shared.PersonScopedRepository[T]
	personRepo casefile.PersonRepository
	publisher  shared.EventPublisher
	eventType  string
	aggType    string
	signals    []string
}

func newChildService[T any, PT childAggregate[T]](
	repo shared.PersonScopedRepository[T],
	personRepo casefile.PersonRepository,
	publisher shared.EventPublisher,
	eventType, aggType string,
	signals ...string,
) *ChildService[T, PT] {
	return &ChildService[T, PT]{
		repo:       repo,
		personRepo: personRepo,
		publisher:  publisher,
		eventType:  eventType,
		aggType:    aggType,
		signals:    signals,
	}
}

// EnsurePerson verifies the person exists within the tenant
func (s *ChildService[T, PT]) EnsurePerson(ctx context.Context, tenantID, personID uuid.UUID) error {
	exists, err := s.personRepo.ExistsForTenant(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}

// List returns the person's records in this section
func (s *ChildService[T, PT]) List(ctx context.Context, tenantID, personID uuid.UUID) ([]T, error) {
	if err := s.EnsurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	return s.repo.ListByPerson(ctx, tenantID, personID)
}

// Get retrieves one record, verifying it belongs to the person
func (s *ChildService[T, PT]) Get(ctx context.Context, tenantID, personID, id uuid.UUID) (PT, error) {
	var zero PT
	e, err := s.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return zero, err
	}
	if PT(e).GetPersonID() != personID {
		return zero, shared.ErrNotFound
	}
	return PT(e), nil
}

// Save persists a record and announces the section change
func (s *ChildService[T, PT]) Save(ctx context.Context, e PT) error {
	if err := s.repo.Save(ctx, (*T)(e)); err != nil {
		return err
	}
	s.announce(ctx, e.GetID(), e.GetTenantID(), e.GetPersonID())
	return nil
}

// Delete removes a record after verifying person ownership
func (s *ChildService[T, PT]) Delete(ctx context.Context, tenantID, personID, id uuid.UUID) error {
	if _, err := s.Get(ctx, tenantID, personID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	s.announce(ctx, id, tenantID, personID)
	return nil
}

func (s *ChildService[T, PT]) announce(ctx context.Context, aggID, tenantID, personID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	event := casefile.NewSectionChangedEvent(s.eventType, s.aggType, aggID, tenantID, personID, s.signals...)
	_ = s.publisher.Publish(ctx, event)
}
