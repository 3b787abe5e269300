package casefile

import (
	"context"
	"time"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// IndemnitorService handles indemnitor operations
type IndemnitorService struct {
	*ChildService[casefile.Indemnitor, *casefile.Indemnitor]
}

// NewIndemnitorService creates a new IndemnitorService
func NewIndemnitorService(repo casefile.IndemnitorRepository, personRepo casefile.PersonRepository, publisher shared.EventPublisher) *IndemnitorService {
	return &IndemnitorService{
		ChildService: newChildService[casefile.Indemnitor, *casefile.Indemnitor](
			repo, personRepo, publisher,
			casefile.EventTypeIndemnitorsChanged, "Indemnitor",
		),
	}
}

// IndemnitorInput carries the editable fields of an indemnitor
type IndemnitorInput struct {
	Name         string
	Relationship string
	Phone        string
	Email        string
	Address      string
}

// Create adds an indemnitor to a person's file
func (s *IndemnitorService) Create(ctx context.Context, tenantID, personID uuid.UUID, in IndemnitorInput) (*casefile.Indemnitor, error) {
	if err := s.EnsurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	ind, err := casefile.NewIndemnitor(tenantID, personID, in.Name, in.Relationship, in.Phone, in.Email, in.Address)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

// Update replaces an indemnitor's editable fields
func (s *IndemnitorService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in IndemnitorInput) (*casefile.Indemnitor, error) {
	ind, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}
	if err := ind.Update(in.Name, in.Relationship, in.Phone, in.Email, in.Address); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

// ReferenceService handles personal reference operations
type ReferenceService struct {
	*ChildService[casefile.Reference, *casefile.Reference]
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(repo casefile.ReferenceRepository, personRepo casefile.PersonRepository, publisher shared.EventPublisher) *ReferenceService {
	return &ReferenceService{
		ChildService: newChildService[casefile.Reference, *casefile.Reference](
			repo, personRepo, publisher,
			casefile.EventTypeReferencesChanged, "Reference",
		),
	}
}

// ReferenceInput carries the editable fields of a reference
type ReferenceInput struct {
	Name         string
	Relationship string
	Phone        string
	Notes        string
}

// Create adds a reference to a person's file
func (s *ReferenceService) Create(ctx context.Context, tenantID, personID uuid.UUID, in ReferenceInput) (*casefile.Reference, error) {
	if err := s.EnsurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	ref, err := casefile.NewReference(tenantID, personID, in.Name, in.Relationship, in.Phone, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// Update replaces a reference's editable fields
func (s *ReferenceService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in ReferenceInput) (*casefile.Reference, error) {
	ref, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}
	if err := ref.Update(in.Name, in.Relationship, in.Phone, in.Notes); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// CourtDateService handles court date operations
type CourtDateService struct {
	*ChildService[casefile.CourtDate, *casefile.CourtDate]
}

// NewCourtDateService creates a new CourtDateService
func NewCourtDateService(repo casefile.CourtDateRepository, personRepo casefile.PersonRepository, publisher shared.EventPublisher) *CourtDateService {
	return &CourtDateService{
		ChildService: newChildService[casefile.CourtDate, *casefile.CourtDate](
			repo, personRepo, publisher,
			casefile.EventTypeCourtDatesChanged, "CourtDate",
			casefile.SignalCourtDatesChanged,
		),
	}
}

// CourtDateInput carries the editable fields of a court date
type CourtDateInput struct {
	Date      time.Time
	TimeOfDay string
	Location  string
	Room      string
	Notes     string
}

// Create schedules a court date for a person
func (s *CourtDateService) Create(ctx context.Context, tenantID, personID uuid.UUID, in CourtDateInput) (*casefile.CourtDate, error) {
	if err := s.EnsurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	cd, err := casefile.NewCourtDate(tenantID, personID, in.Date, in.TimeOfDay, in.Location, in.Room, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, cd); err != nil {
		return nil, err
	}
	return cd, nil
}

// Update replaces a court date's editable fields
func (s *CourtDateService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in CourtDateInput) (*casefile.CourtDate, error) {
	cd, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}
	if err := cd.Update(in.Date, in.TimeOfDay, in.Location, in.Room, in.Notes); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, cd); err != nil {
		return nil, err
	}
	return cd, nil
}

// CheckInService handles check-in operations
type CheckInService struct {
	*ChildService[casefile.CheckIn, *casefile.CheckIn]
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(repo casefile.CheckInRepository, personRepo casefile.PersonRepository, publisher shared.EventPublisher) *CheckInService {
	return &CheckInService{
		ChildService: newChildService[casefile.CheckIn, *casefile.CheckIn](
			repo, personRepo, publisher,
			casefile.EventTypeCheckInsChanged, "CheckIn",
			casefile.SignalCheckInsChanged,
		),
	}
}

// CheckInInput carries the editable fields of a check-in
type CheckInInput struct {
	Method casefile.CheckInMethod
	Notes  string
}

// Create records a check-in for a person
func (s *CheckInService) Create(ctx context.Context, tenantID, personID uuid.UUID, in CheckInInput) (*casefile.CheckIn, error) {
	if err := s.EnsurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	ci, err := casefile.NewCheckIn(tenantID, personID, in.Method, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}

// Update replaces a check-in's editable fields
func (s *CheckInService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in CheckInInput) (*casefile.CheckIn, error) {
	ci, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}
	if err := ci.Update(in.Method, in.Notes); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}
