package billing

import (
	"context"
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillingService serves the derived billing read models for a person:
// the invoice context table and the summary widget. Nothing it returns
// is ever stored; both are recomputed from invoices and receipts on
// every call.
type BillingService struct {
	invoiceRepo billing.InvoiceRepository
	receiptRepo billing.ReceiptRepository
	personRepo  casefile.PersonRepository
}

// NewBillingService creates a new BillingService
func NewBillingService(
	invoiceRepo billing.InvoiceRepository,
	receiptRepo billing.ReceiptRepository,
	personRepo casefile.PersonRepository,
) *BillingService {
	return &BillingService{
		invoiceRepo: invoiceRepo,
		receiptRepo: receiptRepo,
		personRepo:  personRepo,
	}
}

// InvoiceContext is the person billing page read model
type InvoiceContext struct {
	Rows   []billing.InvoiceRow
	Totals billing.Totals
}

// Summary is the billing widget read model. LastPaymentDate and
// DaysSinceLastPayment are nil when the person has never paid.
type Summary struct {
	Totals               billing.Totals
	LastPaymentDate      *time.Time
	DaysSinceLastPayment *int
}

// GetInvoiceContext derives per-invoice paid/balance rows and totals
// for a person
func (s *BillingService) GetInvoiceContext(ctx context.Context, tenantID, personID uuid.UUID) (*InvoiceContext, error) {
	invoices, receipts, err := s.load(ctx, tenantID, personID)
	if err != nil {
		return nil, err
	}

	rows, totals := billing.BuildInvoiceContext(invoices, receipts)
	return &InvoiceContext{Rows: rows, Totals: totals}, nil
}

// GetSummary derives the billing widget for a person
func (s *BillingService) GetSummary(ctx context.Context, tenantID, personID uuid.UUID, now time.Time) (*Summary, error) {
	invoices, receipts, err := s.load(ctx, tenantID, personID)
	if err != nil {
		return nil, err
	}

	_, totals := billing.BuildInvoiceContext(invoices, receipts)
	summary := &Summary{Totals: totals}

	if last, ok := billing.LastPaymentDate(receipts); ok {
		days := int(now.Sub(last).Hours() / 24)
		if days < 0 {
			days = 0
		}
		summary.LastPaymentDate = &last
		summary.DaysSinceLastPayment = &days
	}
	return summary, nil
}

func (s *BillingService) load(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Invoice, []billing.Receipt, error) {
	exists, err := s.personRepo.ExistsForTenant(ctx, tenantID, personID)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, shared.ErrNotFound
	}

	invoices, err := s.invoiceRepo.ListByPerson(ctx, tenantID, personID)
	if err != nil {
		return nil, nil, err
	}
	receipts, err := s.receiptRepo.ListByPerson(ctx, tenantID, personID)
	if err != nil {
		return nil, nil, err
	}
	return invoices, receipts, nil
}
