package persistence

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
)

// GormIndemnitorRepository implements casefile.IndemnitorRepository
type GormIndemnitorRepository struct {
	childRepo[casefile.Indemnitor, models.IndemnitorModel, *models.IndemnitorModel]
}

// NewGormIndemnitorRepository creates a new GORM indemnitor repository
func NewGormIndemnitorRepository(db *Database) *GormIndemnitorRepository {
	r := &GormIndemnitorRepository{}
	r.db = db
	return r
}

// ListByPerson lists a person's indemnitors, newest first
func (r *GormIndemnitorRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.Indemnitor, error) {
	return r.listByPerson(ctx, tenantID, personID, "created_at DESC, id DESC")
}

// GormReferenceRepository implements casefile.ReferenceRepository
type GormReferenceRepository struct {
	childRepo[casefile.Reference, models.ReferenceModel, *models.ReferenceModel]
}

// NewGormReferenceRepository creates a new GORM reference repository
func NewGormReferenceRepository(db *Database) *GormReferenceRepository {
	r := &GormReferenceRepository{}
	r.db = db
	return r
}

// ListByPerson lists a person's references, newest first
func (r *GormReferenceRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.Reference, error) {
	return r.listByPerson(ctx, tenantID, personID, "created_at DESC, id DESC")
}

// GormCourtDateRepository implements casefile.CourtDateRepository
type GormCourtDateRepository struct {
	childRepo[casefile.CourtDate, models.CourtDateModel, *models.CourtDateModel]
}

// NewGormCourtDateRepository creates a new GORM court date repository
func NewGormCourtDateRepository(db *Database) *GormCourtDateRepository {
	r := &GormCourtDateRepository{}
	r.db = db
	return r
}

// courtDateRecency is the canonical recency ordering for court dates.
// Empty time-of-day strings sort before any "HH:MM", so a dated-only
// entry loses to a timed entry on the same day.
const courtDateRecency = "date DESC, time_of_day DESC, id DESC"

// ListByPerson lists a person's court dates, most recent first
func (r *GormCourtDateRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.CourtDate, error) {
	return r.listByPerson(ctx, tenantID, personID, courtDateRecency)
}

// FindMostRecent returns the person's latest court date by
// (date, time, id) descending
func (r *GormCourtDateRepository) FindMostRecent(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.CourtDate, error) {
	return r.firstByPerson(ctx, tenantID, personID, courtDateRecency)
}

// GormCheckInRepository implements casefile.CheckInRepository
type GormCheckInRepository struct {
	childRepo[casefile.CheckIn, models.CheckInModel, *models.CheckInModel]
}

// NewGormCheckInRepository creates a new GORM check-in repository
func NewGormCheckInRepository(db *Database) *GormCheckInRepository {
	r := &GormCheckInRepository{}
	r.db = db
	return r
}

// ListByPerson lists a person's check-ins, newest first
func (r *GormCheckInRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.CheckIn, error) {
	return r.listByPerson(ctx, tenantID, personID, "created_at DESC, id DESC")
}

// FindLatest returns the person's latest check-in by (created_at, id)
// descending
func (r *GormCheckInRepository) FindLatest(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.CheckIn, error) {
	return r.firstByPerson(ctx, tenantID, personID, "created_at DESC, id DESC")
}

// Interface compliance checks
var (
	_ casefile.IndemnitorRepository = (*GormIndemnitorRepository)(nil)
	_ casefile.ReferenceRepository  = (*GormReferenceRepository)(nil)
	_ casefile.CourtDateRepository  = (*GormCourtDateRepository)(nil)
	_ casefile.CheckInRepository    = (*GormCheckInRepository)(nil)
)
