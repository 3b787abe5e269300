package billing

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BondRepository defines persistence operations for bonds
type BondRepository interface {
	shared.PersonScopedRepository[Bond]
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	shared.PersonScopedRepository[Invoice]
	// FindByNumberForTenant finds an invoice by its per-tenant unique number
	FindByNumberForTenant(ctx context.Context, tenantID uuid.UUID, number string) (*Invoice, error)
	// GetOrCreate atomically ensures an invoice with inv's (tenant,
	// number) exists. On a unique-constraint race the loser re-fetches
	// the winner's row. Returns the persisted invoice and whether this
	// call created it.
	GetOrCreate(ctx context.Context, inv *Invoice) (*Invoice, bool, error)
}

// ReceiptRepository defines persistence operations for receipts
type ReceiptRepository interface {
	shared.TenantRepository[Receipt]
	// ListByInvoice returns receipts for an invoice ordered by
	// (date, id) descending
	ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]Receipt, error)
	// ListByPerson returns receipts across all of a person's invoices
	// ordered by (date, id) descending
	ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]Receipt, error)
}
