package billing

import (
	"strings"
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice. It is a
// two-state machine: UNPAID transitions to PAID when the derived
// balance reaches zero, and back when a receipt is removed.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// Invoice is an amount billed to a person. Its balance is never
// stored; it is always derived as amount minus the sum of receipts.
// Number is unique per tenant and doubles as the idempotence key for
// bond auto-invoicing ("BOND-<bond-id>").
type Invoice struct {
	shared.TenantAggregateRoot
	PersonID    uuid.UUID
	Number      string
	Date        time.Time
	DueDate     *time.Time
	Description string
	Amount      decimal.Decimal
	Status      InvoiceStatus
}

// NewInvoice creates a new unpaid invoice
func NewInvoice(tenantID, personID uuid.UUID, number string, date time.Time, dueDate *time.Time, description string, amount decimal.Decimal) (*Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "invoice number is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invoice amount cannot be negative")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invoice date is required")
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Number:              number,
		Date:                date,
		DueDate:             dueDate,
		Description:         description,
		Amount:              amount,
		Status:              InvoiceStatusUnpaid,
	}, nil
}

// Update replaces the invoice's editable fields. The status is not an
// input here; it follows the derived balance via ReconcileStatus.
func (i *Invoice) Update(number string, date time.Time, dueDate *time.Time, description string, amount decimal.Decimal) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewDomainError("INVALID_INPUT", "invoice number is required")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "invoice amount cannot be negative")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "invoice date is required")
	}
	i.Number = number
	i.Date = date
	i.DueDate = dueDate
	i.Description = description
	i.Amount = amount
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (i *Invoice) GetPersonID() uuid.UUID {
	return i.PersonID
}

// Balance returns amount minus the given paid total
func (i *Invoice) Balance(paid decimal.Decimal) decimal.Decimal {
	return i.Amount.Sub(paid)
}

// ReconcileStatus applies the status transition rule against the
// derived paid total: balance <= 0 settles the invoice, anything else
// reopens it. Returns true when the status changed.
func (i *Invoice) ReconcileStatus(paid decimal.Decimal) bool {
	target := InvoiceStatusUnpaid
	if !i.Balance(paid).IsPositive() {
		target = InvoiceStatusPaid
	}
	if i.Status == target {
		return false
	}
	i.Status = target
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return true
}
