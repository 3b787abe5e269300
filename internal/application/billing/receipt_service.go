package billing

import (
	"context"
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptService handles payments against invoices. Every mutation
// replays the invoice status rule against the derived paid total, so
// adding the final payment settles the invoice and deleting one reopens
// it.
type ReceiptService struct {
	receiptRepo billing.ReceiptRepository
	invoiceRepo billing.InvoiceRepository
	publisher   shared.EventPublisher
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	receiptRepo billing.ReceiptRepository,
	invoiceRepo billing.InvoiceRepository,
	publisher shared.EventPublisher,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
		publisher:   publisher,
	}
}

// ReceiptInput carries the editable fields of a receipt
type ReceiptInput struct {
	Amount decimal.Decimal
	Date   time.Time
	Method billing.PaymentMethod
	Notes  string
}

// Create records a payment against an invoice
func (s *ReceiptService) Create(ctx context.Context, tenantID, personID, invoiceID uuid.UUID, in ReceiptInput) (*billing.Receipt, error) {
	inv, err := s.getInvoice(ctx, tenantID, personID, invoiceID)
	if err != nil {
		return nil, err
	}

	r, err := billing.NewReceipt(tenantID, inv.ID, personID, in.Amount, in.Date, in.Method, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, inv); err != nil {
		return nil, err
	}

	s.announce(ctx, r.ID, tenantID, personID)
	return r, nil
}

// Get retrieves a receipt, verifying the invoice and person scopes
func (s *ReceiptService) Get(ctx context.Context, tenantID, personID, invoiceID, id uuid.UUID) (*billing.Receipt, error) {
	r, err := s.receiptRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if r.InvoiceID != invoiceID || r.PersonID != personID {
		return nil, shared.ErrNotFound
	}
	return r, nil
}

// List returns an invoice's receipts, newest first
func (s *ReceiptService) List(ctx context.Context, tenantID, personID, invoiceID uuid.UUID) ([]billing.Receipt, error) {
	if _, err := s.getInvoice(ctx, tenantID, personID, invoiceID); err != nil {
		return nil, err
	}
	return s.receiptRepo.ListByInvoice(ctx, tenantID, invoiceID)
}

// Update replaces a receipt's editable fields
func (s *ReceiptService) Update(ctx context.Context, tenantID, personID, invoiceID, id uuid.UUID, in ReceiptInput) (*billing.Receipt, error) {
	inv, err := s.getInvoice(ctx, tenantID, personID, invoiceID)
	if err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, tenantID, personID, invoiceID, id)
	if err != nil {
		return nil, err
	}
	if err := r.Update(in.Amount, in.Date, in.Method, in.Notes); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, inv); err != nil {
		return nil, err
	}

	s.announce(ctx, r.ID, tenantID, personID)
	return r, nil
}

// Delete removes a receipt, reopening the invoice when the remaining
// payments no longer cover it
func (s *ReceiptService) Delete(ctx context.Context, tenantID, personID, invoiceID, id uuid.UUID) error {
	inv, err := s.getInvoice(ctx, tenantID, personID, invoiceID)
	if err != nil {
		return err
	}
	if _, err := s.Get(ctx, tenantID, personID, invoiceID, id); err != nil {
		return err
	}
	if err := s.receiptRepo.DeleteForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	if err := s.reconcile(ctx, inv); err != nil {
		return err
	}

	s.announce(ctx, id, tenantID, personID)
	return nil
}

func (s *ReceiptService) getInvoice(ctx context.Context, tenantID, personID, invoiceID uuid.UUID) (*billing.Invoice, error) {
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.PersonID != personID {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

// reconcile recomputes the invoice's paid total and persists a status
// transition when one happened
func (s *ReceiptService) reconcile(ctx context.Context, inv *billing.Invoice) error {
	receipts, err := s.receiptRepo.ListByInvoice(ctx, inv.TenantID, inv.ID)
	if err != nil {
		return err
	}
	paid := decimal.Zero
	for _, r := range receipts {
		paid = paid.Add(r.Amount)
	}

	if !inv.ReconcileStatus(paid) {
		return nil
	}
	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, billing.NewInvoiceStatusEvent(inv))
	}
	return nil
}

func (s *ReceiptService) announce(ctx context.Context, aggID, tenantID, personID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, billing.NewBillingChangedEvent(billing.EventTypeReceiptsChanged, "Receipt", aggID, tenantID, personID))
}
