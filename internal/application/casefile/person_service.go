package casefile

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PersonService handles person (defendant) operations
type PersonService struct {
	personRepo casefile.PersonRepository
	publisher  shared.EventPublisher
}

// NewPersonService creates a new PersonService
func NewPersonService(personRepo casefile.PersonRepository, publisher shared.EventPublisher) *PersonService {
	return &PersonService{
		personRepo: personRepo,
		publisher:  publisher,
	}
}

// PersonInput carries the editable fields of a person
type PersonInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Notes     string
}

// Create creates a new person for a tenant
func (s *PersonService) Create(ctx context.Context, tenantID uuid.UUID, in PersonInput) (*casefile.Person, error) {
	p, err := casefile.NewPerson(tenantID, in.FirstName, in.LastName, in.Phone, in.Email, in.Address, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.personRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, p)
	return p, nil
}

// Get retrieves a person by ID within a tenant
func (s *PersonService) Get(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.Person, error) {
	return s.personRepo.FindByIDForTenant(ctx, tenantID, personID)
}

// Search lists people matching q against first/last name, phone and
// email, ordered by last name then first name, capped at the filter
// limit.
func (s *PersonService) Search(ctx context.Context, tenantID uuid.UUID, q string, filter shared.Filter) ([]casefile.Person, error) {
	if filter.Limit <= 0 {
		filter = shared.DefaultFilter()
	}
	return s.personRepo.SearchForTenant(ctx, tenantID, q, filter)
}

// Update replaces a person's editable fields
func (s *PersonService) Update(ctx context.Context, tenantID, personID uuid.UUID, in PersonInput) (*casefile.Person, error) {
	p, err := s.personRepo.FindByIDForTenant(ctx, tenantID, personID)
	if err != nil {
		return nil, err
	}
	if err := p.Update(in.FirstName, in.LastName, in.Phone, in.Email, in.Address, in.Notes); err != nil {
		return nil, err
	}
	if err := s.personRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, p)
	return p, nil
}

// Delete removes a person and every child record hanging off them
func (s *PersonService) Delete(ctx context.Context, tenantID, personID uuid.UUID) error {
	p, err := s.personRepo.FindByIDForTenant(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if err := s.personRepo.DeleteForTenant(ctx, tenantID, personID); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, casefile.NewPersonChangedEvent(casefile.EventTypePersonDeleted, p))
	}
	return nil
}

func (s *PersonService) publishEvents(ctx context.Context, p *casefile.Person) {
	if s.publisher == nil {
		return
	}
	for _, event := range p.GetDomainEvents() {
		_ = s.publisher.Publish(ctx, event)
	}
	p.ClearDomainEvents()
}
