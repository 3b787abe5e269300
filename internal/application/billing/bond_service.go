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

// BondService handles bond operations. Saving a bond with a positive
// amount guarantees a matching invoice exists, numbered after the bond
// so the operation is idempotent under retries and races.
type BondService struct {
	bondRepo    billing.BondRepository
	invoiceRepo billing.InvoiceRepository
	receiptRepo billing.ReceiptRepository
	personRepo  casefile.PersonRepository
	publisher   shared.EventPublisher

	// resyncInvoiceAmount makes re-saving a bond push its amount onto
	// the existing auto-invoice. Off by default: once billed, manual
	// edits to the invoice win.
	resyncInvoiceAmount bool
}

// NewBondService creates a new BondService
func NewBondService(
	bondRepo billing.BondRepository,
	invoiceRepo billing.InvoiceRepository,
	receiptRepo billing.ReceiptRepository,
	personRepo casefile.PersonRepository,
	publisher shared.EventPublisher,
	resyncInvoiceAmount bool,
) *BondService {
	return &BondService{
		bondRepo:            bondRepo,
		invoiceRepo:         invoiceRepo,
		receiptRepo:         receiptRepo,
		personRepo:          personRepo,
		publisher:           publisher,
		resyncInvoiceAmount: resyncInvoiceAmount,
	}
}

// BondInput carries the editable fields of a bond
type BondInput struct {
	Amount      decimal.Decimal
	Date        *time.Time
	Offense     string
	PowerNumber string
	Status      billing.BondStatus
}

// Create writes a bond and auto-invoices it when the amount is positive
func (s *BondService) Create(ctx context.Context, tenantID, personID uuid.UUID, in BondInput) (*billing.Bond, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}

	b, err := billing.NewBond(tenantID, personID, in.Amount, in.Date, in.Offense, in.PowerNumber)
	if err != nil {
		return nil, err
	}
	if err := s.bondRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.ensureInvoice(ctx, b); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, b)
	return b, nil
}

// Get retrieves a bond, verifying it belongs to the person
func (s *BondService) Get(ctx context.Context, tenantID, personID, id uuid.UUID) (*billing.Bond, error) {
	b, err := s.bondRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if b.PersonID != personID {
		return nil, shared.ErrNotFound
	}
	return b, nil
}

// List returns a person's bonds
func (s *BondService) List(ctx context.Context, tenantID, personID uuid.UUID) ([]billing.Bond, error) {
	if err := s.ensurePerson(ctx, tenantID, personID); err != nil {
		return nil, err
	}
	return s.bondRepo.ListByPerson(ctx, tenantID, personID)
}

// Update replaces a bond's editable fields and re-runs the invoice
// guarantee. Get-or-create keeps this idempotent; an existing invoice
// is only touched when amount resync is enabled.
func (s *BondService) Update(ctx context.Context, tenantID, personID, id uuid.UUID, in BondInput) (*billing.Bond, error) {
	b, err := s.Get(ctx, tenantID, personID, id)
	if err != nil {
		return nil, err
	}
	if err := b.Update(in.Amount, in.Date, in.Offense, in.PowerNumber, in.Status); err != nil {
		return nil, err
	}
	if err := s.bondRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.ensureInvoice(ctx, b); err != nil {
		return nil, err
	}

	s.announce(ctx, billing.EventTypeBondsChanged, "Bond", b.ID, tenantID, personID)
	return b, nil
}

// Delete removes a bond. Its invoice, if any, stays on the books.
func (s *BondService) Delete(ctx context.Context, tenantID, personID, id uuid.UUID) error {
	if _, err := s.Get(ctx, tenantID, personID, id); err != nil {
		return err
	}
	if err := s.bondRepo.DeleteForTenant(ctx, tenantID, id); err != nil {
		return err
	}
	s.announce(ctx, billing.EventTypeBondsChanged, "Bond", id, tenantID, personID)
	return nil
}

// ensureInvoice makes sure a positive-amount bond has its invoice.
// Zero-amount bonds never bill, and a bond never gets a second invoice
// because the number is derived from the bond's identity.
func (s *BondService) ensureInvoice(ctx context.Context, b *billing.Bond) error {
	if !b.RequiresInvoice() {
		return nil
	}

	date := b.EffectiveDate(time.Now())
	inv, err := billing.NewInvoice(b.TenantID, b.PersonID, b.InvoiceNumber(), date, b.Date, bondInvoiceDescription(b), b.Amount)
	if err != nil {
		return err
	}

	persisted, created, err := s.invoiceRepo.GetOrCreate(ctx, inv)
	if err != nil {
		return err
	}
	if created {
		return nil
	}

	if s.resyncInvoiceAmount && !persisted.Amount.Equal(b.Amount) {
		return s.resyncAmount(ctx, persisted, b.Amount)
	}
	return nil
}

// resyncAmount pushes the bond amount onto the existing invoice and
// replays the status rule, since a lower amount can settle the invoice
// and a higher one can reopen it.
func (s *BondService) resyncAmount(ctx context.Context, inv *billing.Invoice, amount decimal.Decimal) error {
	if err := inv.Update(inv.Number, inv.Date, inv.DueDate, inv.Description, amount); err != nil {
		return err
	}

	receipts, err := s.receiptRepo.ListByInvoice(ctx, inv.TenantID, inv.ID)
	if err != nil {
		return err
	}
	paid := decimal.Zero
	for _, r := range receipts {
		paid = paid.Add(r.Amount)
	}
	changed := inv.ReconcileStatus(paid)

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return err
	}
	if changed && s.publisher != nil {
		_ = s.publisher.Publish(ctx, billing.NewInvoiceStatusEvent(inv))
	}
	return nil
}

func bondInvoiceDescription(b *billing.Bond) string {
	if b.PowerNumber != "" {
		return "Bail bond " + b.PowerNumber
	}
	return "Bail bond"
}

func (s *BondService) ensurePerson(ctx context.Context, tenantID, personID uuid.UUID) error {
	exists, err := s.personRepo.ExistsForTenant(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}

func (s *BondService) announce(ctx context.Context, eventType, aggType string, aggID, tenantID, personID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, billing.NewBillingChangedEvent(eventType, aggType, aggID, tenantID, personID))
}

func (s *BondService) publishEvents(ctx context.Context, b *billing.Bond) {
	if s.publisher == nil {
		return
	}
	for _, event := range b.GetDomainEvents() {
		_ = s.publisher.Publish(ctx, event)
	}
	b.ClearDomainEvents()
}
