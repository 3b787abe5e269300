package billing

import (
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for billing aggregates
const (
	EventTypeBondCreated     = "billing.bond.created"
	EventTypeBondsChanged    = "billing.bonds.changed"
	EventTypeInvoicesChanged = "billing.invoices.changed"
	EventTypeReceiptsChanged = "billing.receipts.changed"
	EventTypeInvoicePaid     = "billing.invoice.paid"
	EventTypeInvoiceReopened = "billing.invoice.reopened"
)

// SignalBillingChanged is the refresh signal for all billing mutations.
// Frontend contract; do not rename.
const SignalBillingChanged = "billing_changed"

// BondCreatedEvent is published when a bond is written
type BondCreatedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID       `json:"person_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewBondCreatedEvent creates a bond created event
func NewBondCreatedEvent(b *Bond) *BondCreatedEvent {
	return &BondCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBondCreated, "Bond", b.ID, b.TenantID),
		PersonID:        b.PersonID,
		Amount:          b.Amount,
	}
}

// RefreshSignals implements shared.RefreshSignaler
func (e *BondCreatedEvent) RefreshSignals() []string {
	return []string{SignalBillingChanged, "modal_close"}
}

// BillingChangedEvent is published on every bond/invoice/receipt
// mutation so widgets and invoice sections refresh.
type BillingChangedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID `json:"person_id"`
}

// NewBillingChangedEvent creates a billing change event
func NewBillingChangedEvent(eventType, aggType string, aggID, tenantID, personID uuid.UUID) *BillingChangedEvent {
	return &BillingChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, aggType, aggID, tenantID),
		PersonID:        personID,
	}
}

// RefreshSignals implements shared.RefreshSignaler
func (e *BillingChangedEvent) RefreshSignals() []string {
	return []string{SignalBillingChanged, "modal_close"}
}

// InvoiceStatusEvent is published when an invoice's status machine
// transitions between UNPAID and PAID.
type InvoiceStatusEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID     `json:"person_id"`
	Number   string        `json:"number"`
	Status   InvoiceStatus `json:"status"`
}

// NewInvoiceStatusEvent creates an invoice status transition event
func NewInvoiceStatusEvent(inv *Invoice) *InvoiceStatusEvent {
	eventType := EventTypeInvoiceReopened
	if inv.Status == InvoiceStatusPaid {
		eventType = EventTypeInvoicePaid
	}
	return &InvoiceStatusEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Invoice", inv.ID, inv.TenantID),
		PersonID:        inv.PersonID,
		Number:          inv.Number,
		Status:          inv.Status,
	}
}

// RefreshSignals implements shared.RefreshSignaler
func (e *InvoiceStatusEvent) RefreshSignals() []string {
	return []string{SignalBillingChanged}
}
