package billing

import (
	"context"
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceService handles manually managed invoices. Status is never an
// input; it always follows the derived balance.
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	receiptRepo billing.ReceiptRepository
	personRepo  casefile.PersonRepository
	publisher   shared.EventPublisher
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	receiptRepo billing.ReceiptRepository,
	personRepo casefile.PersonRepository,
	publisher shared.EventPublisher,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		receiptRepo: receiptRepo,
		personRepo:  personRepo,
		publisher:   publisher,
	}
}

// InvoiceInput carries the editable fields of an invoice
type InvoiceInput struct {
	Number      string
	Date        time.Time
	DueDate     *time.Time
	Description string
	Amount      decimal.Decimal
}

// Create adds a manual invoice to a person's file
func (s *InvoiceService) Create(ctx context.Context, tenantID, personID uuid.UUID, in InvoiceInput) (*billing.Invoice, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}

	inv, err := billing.NewInvoice(tenantID, personID, in.Number, in.Date, in.DueDate, in.Description, in.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.invoiceRepo.FindByNumberForTenant(ctx, tenantID, inv.Number); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An invoice with this number already exists")
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	s.announce(ctx, inv.ID, tenantID, personID)
	return inv, nil
}

// Get retrieves an invoice, verifying it belongs to the person
func (s *InvoiceService) Get(ctx context.Context, tenantID, personID, id uuid.UUID) (*billing.Invoice, error) {
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if inv.PersonID != personID {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

// List returns a person's invoices, newest first
func (s *InvoiceService) List(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Invoice, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByPerson(ctx, tenantID, personID)
}

// Update replaces an invoice's editable fields and replays the status
// rule, since changing the amount can settle or reopen it.
func (s *InvoiceService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in InvoiceInput) (*billing.Invoice, error) {
	inv, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}

	if in.Number != inv.Number {
		if _, err := s.invoiceRepo.FindByNumberForTenant(ctx, tenantID, in.Number); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An invoice with this number already exists")
		} else if err != shared.ErrNotFound {
			return nil, err
		}
	}

	if err := inv.Update(in.Number, in.Date, in.DueDate, in.Description, in.Amount); err != nil {
		return nil, err
	}

	paid, err := s.paidTotal(ctx, tenantID, inv.ID)
	if err != nil {
		return nil, err
	}
	changed := inv.ReconcileStatus(paid)

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	if changed && s.publisher != nil {
		_ = s.publisher.Publish(ctx, billing.NewInvoiceStatusEvent(inv))
	}
	s.announce(ctx, inv.ID, tenantID, personID)
	return inv, nil
}

// Delete removes an invoice together with its receipts
func (s *InvoiceService) Delete(ctx context.Context, tenantID, personID, id uuid.UUID) error {
	if _, err := s.Get(ctx, tenantID, personID, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	s.announce(ctx, id, tenantID, personID)
	return nil
}

func (s *InvoiceService) paidTotal(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error) {
	receipts, err := s.receiptRepo.ListByInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}
	paid := decimal.Zero
	for _, r := range receipts {
		paid = paid.Add(r.Amount)
	}
	return paid, nil
}

func (s *InvoiceService) ensurePerson(ctx context.Context, tenantID, personID uuid.UUID) error {
	exists, err := s.personRepo.ExistsForTenant(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}

func (s *InvoiceService) announce(ctx context.Context, aggID, tenantID, personID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, billing.NewBillingChangedEvent(billing.EventTypeInvoicesChanged, "Invoice", aggID, tenantID, personID))
}
