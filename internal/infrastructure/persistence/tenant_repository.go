package persistence

import (
	"context"
	"errors"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantRepository implements tenant.Repository using GORM
type GormTenantRepository struct {
	db *Database
}

// NewGormTenantRepository creates a new GORM tenant repository
func NewGormTenantRepository(db *Database) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	var model models.TenantModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *tenant.Tenant) error {
	var model models.TenantModel
	model.FromDomain(t)
	return r.db.DB.WithContext(ctx).Save(&model).Error
}

// GormUserRepository implements tenant.UserRepository using GORM
type GormUserRepository struct {
	db *Database
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *Database) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.User, error) {
	var model models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*tenant.User, error) {
	var model models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, u *tenant.User) error {
	var model models.UserModel
	model.FromDomain(u)
	return r.db.DB.WithContext(ctx).Save(&model).Error
}

// Interface compliance checks
var (
	_ tenant.Repository     = (*GormTenantRepository)(nil)
	_ tenant.UserRepository = (*GormUserRepository)(nil)
)
