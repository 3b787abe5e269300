package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPersonRepository implements casefile.PersonRepository using GORM
type GormPersonRepository struct {
	db *Database
}

// NewGormPersonRepository creates a new GORM person repository
func NewGormPersonRepository(db *Database) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByIDForTenant finds a person by ID within a tenant
func (r *GormPersonRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*casefile.Person, error) {
	var model models.PersonModel
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SearchForTenant lists people matching q against name, phone and
// email, ordered by last then first name. LOWER/LIKE keeps the match
// case-insensitive on both postgres and the sqlite test driver.
func (r *GormPersonRepository) SearchForTenant(ctx context.Context, tenantID uuid.UUID, q string, filter shared.Filter) ([]casefile.Person, error) {
	query := r.db.DB.WithContext(ctx).
		Model(&models.PersonModel{}).
		Where("tenant_id = ?", tenantID)

	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = shared.DefaultFilter().Limit
	}

	var ms []models.PersonModel
	err := query.
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	people := make([]casefile.Person, 0, len(ms))
	for i := range ms {
		people = append(people, *ms[i].ToDomain())
	}
	return people, nil
}

// ExistsForTenant reports whether a person exists within a tenant
func (r *GormPersonRepository) ExistsForTenant(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.PersonModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a person
func (r *GormPersonRepository) Save(ctx context.Context, p *casefile.Person) error {
	var model models.PersonModel
	model.FromDomain(p)
	return r.db.DB.WithContext(ctx).Save(&model).Error
}

// DeleteForTenant deletes a person and all of its children within a
// tenant. Children go first so no receipt or invoice survives to
// contribute to later aggregate computations.
func (r *GormPersonRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&models.ReceiptModel{},
			&models.InvoiceModel{},
			&models.BondModel{},
			&models.CourtDateModel{},
			&models.CheckInModel{},
			&models.IndemnitorModel{},
			&models.ReferenceModel{},
		} {
			if err := tx.Where("tenant_id = ? AND person_id = ?", tenantID, id).Delete(m).Error; err != nil {
				return err
			}
		}

		result := tx.Where("tenant_id = ? AND id = ?", tenantID, id).
			Delete(&models.PersonModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Interface compliance check
var _ casefile.PersonRepository = (*GormPersonRepository)(nil)
