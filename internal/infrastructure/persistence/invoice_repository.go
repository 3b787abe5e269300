package persistence

import (
	"context"
	"errors"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository
type GormInvoiceRepository struct {
	childRepo[billing.Invoice, models.InvoiceModel, *models.InvoiceModel]
}

// NewGormInvoiceRepository creates a new GORM invoice repository
func NewGormInvoiceRepository(db *Database) *GormInvoiceRepository {
	r := &GormInvoiceRepository{}
	r.db = db
	return r
}

// ListByPerson lists a person's invoices, newest first
func (r *GormInvoiceRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Invoice, error) {
	return r.listByPerson(ctx, tenantID, personID, "date DESC, created_at DESC, id DESC")
}

// FindByNumberForTenant finds an invoice by its per-tenant unique number
func (r *GormInvoiceRepository) FindByNumberForTenant(ctx context.Context, tenantID uuid.UUID, number string) (*billing.Invoice, error) {
	var m models.InvoiceModel
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND number = ?", tenantID, number).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// GetOrCreate atomically ensures an invoice with inv's (tenant, number)
// exists. The fast path looks the number up first; on a miss it inserts
// and relies on the unique index over (tenant_id, number) to arbitrate
// concurrent creators. The insert loser re-fetches the winner's row
// instead of surfacing the constraint violation.
func (r *GormInvoiceRepository) GetOrCreate(ctx context.Context, inv *billing.Invoice) (*billing.Invoice, bool, error) {
	existing, err := r.FindByNumberForTenant(ctx, inv.TenantID, inv.Number)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	var m models.InvoiceModel
	m.FromDomain(inv)
	createErr := r.db.DB.WithContext(ctx).Create(&m).Error
	if createErr == nil {
		return inv, true, nil
	}

	// Lost the race: the unique index rejected the insert. Whatever the
	// driver-specific error looks like, the row must exist now.
	existing, err = r.FindByNumberForTenant(ctx, inv.TenantID, inv.Number)
	if err == nil {
		return existing, false, nil
	}
	return nil, false, createErr
}

// DeleteForTenant deletes an invoice and its receipts within a tenant.
// Receipts go with it so they never contribute to aggregates again.
func (r *GormInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND invoice_id = ?", tenantID, id).
			Delete(&models.ReceiptModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("tenant_id = ? AND id = ?", tenantID, id).
			Delete(&models.InvoiceModel{})
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
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
