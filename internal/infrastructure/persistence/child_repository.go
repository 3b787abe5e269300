package persistence

import (
	"context"
	"errors"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// childModelPtr is the constraint tying a persistence model to its
// domain type. Every person-scoped model satisfies it via its
// ToDomain/FromDomain pair.
type childModelPtr[D any, M any] interface {
	*M
	ToDomain() *D
	FromDomain(d *D)
}

// childRepo implements the common CRUD for person-scoped entities
// once; the concrete repositories embed it and add their own ordering
// and extra queries. This replaces seven near-identical repositories
// with one implementation.
type childRepo[D any, M any, PM childModelPtr[D, M]] struct {
	db *Database
}

// FindByIDForTenant finds an entity by ID within a tenant
func (r *childRepo[D, M, PM]) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*D, error) {
	var m M
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}

// Save creates or updates an entity
func (r *childRepo[D, M, PM]) Save(ctx context.Context, d *D) error {
	var m M
	PM(&m).FromDomain(d)
	return r.db.DB.WithContext(ctx).Save(PM(&m)).Error
}

// DeleteForTenant deletes an entity within a tenant. A row belonging
// to another tenant deletes nothing and reports not found.
func (r *childRepo[D, M, PM]) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	var m M
	result := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// listByPerson lists entities for a person with the given ordering
func (r *childRepo[D, M, PM]) listByPerson(ctx context.Context, tenantID, personID uuid.UUID, order string) ([]D, error) {
	var ms []M
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND person_id = ?", tenantID, personID).
		Order(order).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]D, 0, len(ms))
	for i := range ms {
		out = append(out, *PM(&ms[i]).ToDomain())
	}
	return out, nil
}

// firstByPerson returns the first entity for a person under the given
// ordering, or shared.ErrNotFound.
func (r *childRepo[D, M, PM]) firstByPerson(ctx context.Context, tenantID, personID uuid.UUID, order string) (*D, error) {
	var m M
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND person_id = ?", tenantID, personID).
		Order(order).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}
