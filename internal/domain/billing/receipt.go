package billing

import (
	"time"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodCheck PaymentMethod = "check"
	PaymentMethodOther PaymentMethod = "other"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

// Receipt is a payment applied against exactly one invoice.
type Receipt struct {
	shared.TenantAggregateRoot
	InvoiceID uuid.UUID
	PersonID  uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    PaymentMethod
	Notes     string
}

// NewReceipt records a payment against an invoice
func NewReceipt(tenantID, invoiceID, personID uuid.UUID, amount decimal.Decimal, date time.Time, method PaymentMethod, notes string) (*Receipt, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "receipt amount must be positive")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "receipt date is required")
	}
	if method == "" {
		method = PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invalid payment method")
	}

	return &Receipt{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceID:           invoiceID,
		PersonID:            personID,
		Amount:              amount,
		Date:                date,
		Method:              method,
		Notes:               notes,
	}, nil
}

// Update replaces the receipt's editable fields
func (r *Receipt) Update(amount decimal.Decimal, date time.Time, method PaymentMethod, notes string) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "receipt amount must be positive")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "receipt date is required")
	}
	if method == "" {
		method = PaymentMethodCash
	}
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "invalid payment method")
	}
	r.Amount = amount
	r.Date = date
	r.Method = method
	r.Notes = notes
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// GetPersonID returns the owning person's ID
func (r *Receipt) GetPersonID() uuid.UUID {
	return r.PersonID
}
