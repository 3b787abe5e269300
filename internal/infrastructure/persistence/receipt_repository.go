package persistence

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
)

// GormReceiptRepository implements billing.ReceiptRepository
type GormReceiptRepository struct {
	childRepo[billing.Receipt, models.ReceiptModel, *models.ReceiptModel]
}

// NewGormReceiptRepository creates a new GORM receipt repository
func NewGormReceiptRepository(db *Database) *GormReceiptRepository {
	r := &GormReceiptRepository{}
	r.db = db
	return r
}

// ListByInvoice returns receipts for an invoice ordered by (date, id)
// descending
func (r *GormReceiptRepository) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]billing.Receipt, error) {
	var ms []models.ReceiptModel
	err := r.db.DB.WithContext(ctx).
		Where("tenant_id = ? AND invoice_id = ?", tenantID, invoiceID).
		Order("date DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]billing.Receipt, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out, nil
}

// ListByPerson returns receipts across all of a person's invoices
// ordered by (date, id) descending
func (r *GormReceiptRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Receipt, error) {
	return r.listByPerson(ctx, tenantID, personID, "date DESC, id DESC")
}

// Interface compliance check
var _ billing.ReceiptRepository = (*GormReceiptRepository)(nil)
