package persistence

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
)

// GormBondRepository implements billing.BondRepository
type GormBondRepository struct {
	childRepo[billing.Bond, models.BondModel, *models.BondModel]
}

// NewGormBondRepository creates a new GORM bond repository
func NewGormBondRepository(db *Database) *GormBondRepository {
	r := &GormBondRepository{}
	r.db = db
	return r
}

// ListByPerson lists a person's bonds, newest first
func (r *GormBondRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Bond, error) {
	return r.listByPerson(ctx, tenantID, personID, "created_at DESC, id DESC")
}

// Interface compliance check
var _ billing.BondRepository = (*GormBondRepository)(nil)
