package billing

import (
	"context"
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrintService assembles the read models behind printable documents:
// the court appearance notice and the payment receipt. Documents are
// addressed by their own ID, not the person's, so both lookups verify
// the tenant scope themselves.
type PrintService struct {
	tenantRepo    tenant.Repository
	personRepo    casefile.PersonRepository
	courtDateRepo casefile.CourtDateRepository
	invoiceRepo   billing.InvoiceRepository
	receiptRepo   billing.ReceiptRepository
}

// NewPrintService creates a new PrintService
func NewPrintService(
	tenantRepo tenant.Repository,
	personRepo casefile.PersonRepository,
	courtDateRepo casefile.CourtDateRepository,
	invoiceRepo billing.InvoiceRepository,
	receiptRepo billing.ReceiptRepository,
) *PrintService {
	return &PrintService{
		tenantRepo:    tenantRepo,
		personRepo:    personRepo,
		courtDateRepo: courtDateRepo,
		invoiceRepo:   invoiceRepo,
		receiptRepo:   receiptRepo,
	}
}

// CourtNotice is the printable court appearance notice
type CourtNotice struct {
	Agency      *tenant.Tenant
	Person      *casefile.Person
	CourtDate   *casefile.CourtDate
	GeneratedAt time.Time
}

// ReceiptDocument is the printable payment receipt. The money lines are
// derived at print time: InvoiceTotal is the invoice amount,
// TotalPaidToDate sums every receipt on the invoice, and BalanceAfter
// is the remainder floored at zero.
type ReceiptDocument struct {
	Agency          *tenant.Tenant
	Person          *casefile.Person
	Invoice         *billing.Invoice
	Receipt         *billing.Receipt
	InvoiceTotal    decimal.Decimal
	TotalPaidToDate decimal.Decimal
	BalanceAfter    decimal.Decimal
	GeneratedAt     time.Time
}

// GetCourtNotice assembles the court notice for a court date
func (s *PrintService) GetCourtNotice(ctx context.Context, tenantID, courtDateID uuid.UUID) (*CourtNotice, error) {
	cd, err := s.courtDateRepo.FindByIDForTenant(ctx, tenantID, courtDateID)
	if err != nil {
		return nil, err
	}
	person, err := s.personRepo.FindByIDForTenant(ctx, tenantID, cd.PersonID)
	if err != nil {
		return nil, err
	}
	agency, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &CourtNotice{
		Agency:      agency,
		Person:      person,
		CourtDate:   cd,
		GeneratedAt: time.Now(),
	}, nil
}

// GetReceiptDocument assembles the printable receipt for a payment
func (s *PrintService) GetReceiptDocument(ctx context.Context, tenantID, receiptID uuid.UUID) (*ReceiptDocument, error) {
	r, err := s.receiptRepo.FindByIDForTenant(ctx, tenantID, receiptID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, r.InvoiceID)
	if err != nil {
		return nil, err
	}
	person, err := s.personRepo.FindByIDForTenant(ctx, tenantID, r.PersonID)
	if err != nil {
		return nil, err
	}
	agency, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListByInvoice(ctx, tenantID, inv.ID)
	if err != nil {
		return nil, err
	}
	paid := decimal.Zero
	for i := range receipts {
		paid = paid.Add(receipts[i].Amount)
	}

	balance := inv.Balance(paid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	return &ReceiptDocument{
		Agency:          agency,
		Person:          person,
		Invoice:         inv,
		Receipt:         r,
		InvoiceTotal:    inv.Amount,
		TotalPaidToDate: paid,
		BalanceAfter:    balance,
		GeneratedAt:     time.Now(),
	}, nil
}
