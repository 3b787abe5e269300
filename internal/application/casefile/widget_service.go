package casefile

import (
	"context"
	"errors"
	"time"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WidgetService serves the small read models the person detail page
// polls: most recent court date and last check-in. Empty sections are a
// normal state, not an error; the widgets render a placeholder.
type WidgetService struct {
	personRepo    casefile.PersonRepository
	courtDateRepo casefile.CourtDateRepository
	checkInRepo   casefile.CheckInRepository
}

// NewWidgetService creates a new WidgetService
func NewWidgetService(
	personRepo casefile.PersonRepository,
	courtDateRepo casefile.CourtDateRepository,
	checkInRepo casefile.CheckInRepository,
) *WidgetService {
	return &WidgetService{
		personRepo:    personRepo,
		courtDateRepo: courtDateRepo,
		checkInRepo:   checkInRepo,
	}
}

// RecentCourtDate returns the person's latest court date by
// (date, time, id) descending, or nil when none is scheduled.
func (s *WidgetService) RecentCourtDate(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.CourtDate, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	cd, err := s.courtDateRepo.FindMostRecent(ctx, tenantID, personID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cd, nil
}

// LastCheckInResult is the last check-in widget read model
type LastCheckInResult struct {
	CheckIn   *casefile.CheckIn
	DaysSince int
}

// LastCheckIn returns the person's latest check-in by (created_at, id)
// descending together with whole days elapsed, or nil when the person
// has never checked in.
func (s *WidgetService) LastCheckIn(ctx context.Context, tenantID, personID uuid.UUID, now time.Time) (*LastCheckInResult, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	ci, err := s.checkInRepo.FindLatest(ctx, tenantID, personID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &LastCheckInResult{
		CheckIn:   ci,
		DaysSince: ci.DaysSince(now),
	}, nil
}

func (s *WidgetService) ensurePerson(ctx context.Context, tenantID, personID uuid.UUID) error {
	exists, err := s.personRepo.ExistsForTenant(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}
