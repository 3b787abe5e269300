package billing

import (
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BondStatus represents the status of a bond
type BondStatus string

const (
	BondStatusActive     BondStatus = "ACTIVE"
	BondStatusDischarged BondStatus = "DISCHARGED"
	BondStatusForfeited  BondStatus = "FORFEITED"
)

// IsValid checks if the bond status is valid
func (s BondStatus) IsValid() bool {
	switch s {
	case BondStatusActive, BondStatusDischarged, BondStatusForfeited:
		return true
	}
	return false
}

// Bond is a bail bond written for a person. Persisting a bond with a
// positive amount triggers creation of exactly one invoice numbered
// after the bond; that side effect lives in the billing service, not
// here.
type Bond struct {
	shared.TenantAggregateRoot
	PersonID    uuid.UUID
	Amount      decimal.Decimal
	Date        *time.Time
	Offense     string
	PowerNumber string
	Status      BondStatus
}

// NewBond creates a new bond for a person. date may be nil when the
// paperwork has no execution date yet.
func NewBond(tenantID, personID uuid.UUID, amount decimal.Decimal, date *time.Time, offense, powerNumber string) (*Bond, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "bond amount cannot be negative")
	}

	b := &Bond{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PersonID:            personID,
		Amount:              amount,
		Date:                date,
		Offense:             offense,
		PowerNumber:         powerNumber,
		Status:              BondStatusActive,
	}
	b.AddDomainEvent(NewBondCreatedEvent(b))
	return b, nil
}

// Update replaces the bond's editable fields
func (b *Bond) Update(amount decimal.Decimal, date *time.Time, offense, powerNumber string, status BondStatus) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "bond amount cannot be negative")
	}
	if status == "" {
		status = b.Status
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "invalid bond status")
	}
	b.Amount = amount
	b.Date = date
	b.Offense = offense
	b.PowerNumber = powerNumber
	b.Status = status
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (b *Bond) GetPersonID() uuid.UUID {
	return b.PersonID
}

// InvoiceNumber returns the invoice number derived from this bond's
// identity. It is the idempotence key for auto-invoicing.
func (b *Bond) InvoiceNumber() string {
	return "BOND-" + b.ID.String()
}

// RequiresInvoice reports whether saving this bond should create an
// invoice. Zero-amount bonds never bill.
func (b *Bond) RequiresInvoice() bool {
	return b.Amount.IsPositive()
}

// EffectiveDate returns the bond date, falling back to today in the
// given location when the paperwork carries none.
func (b *Bond) EffectiveDate(now time.Time) time.Time {
	if b.Date != nil {
		return *b.Date
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
