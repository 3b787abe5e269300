package models

import (
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BondModel is the persistence model for bonds
type BondModel struct {
	TenantAggregateModel
	PersonID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Date        *time.Time      `gorm:"type:date"`
	Offense     string          `gorm:"size:500"`
	PowerNumber string          `gorm:"size:100"`
	Status      string          `gorm:"size:20;not null"`
}

// TableName returns the table name
func (BondModel) TableName() string {
	return "bonds"
}

// ToDomain converts the model to a domain bond
func (m *BondModel) ToDomain() *billing.Bond {
	b := &billing.Bond{
		PersonID:    m.PersonID,
		Amount:      m.Amount,
		Date:        m.Date,
		Offense:     m.Offense,
		PowerNumber: m.PowerNumber,
		Status:      billing.BondStatus(m.Status),
	}
	m.PopulateTenantAggregateRoot(&b.TenantAggregateRoot)
	return b
}

// FromDomain populates the model from a domain bond
func (m *BondModel) FromDomain(b *billing.Bond) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.PersonID = b.PersonID
	m.Amount = b.Amount
	m.Date = b.Date
	m.Offense = b.Offense
	m.PowerNumber = b.PowerNumber
	m.Status = string(b.Status)
}

// InvoiceModel is the persistence model for invoices. The fields are
// spelled out instead of embedding TenantAggregateModel so the
// composite unique index over (tenant_id, number) can be declared in
// tags; that index is what makes bond auto-invoicing idempotent under
// concurrent requests.
type InvoiceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	Version     int             `gorm:"not null;default:1"`
	TenantID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_tenant_number,priority:1"`
	PersonID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number      string          `gorm:"size:64;not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	Date        time.Time       `gorm:"type:date;not null"`
	DueDate     *time.Time      `gorm:"type:date"`
	Description string          `gorm:"size:500"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"size:20;not null"`
}

// TableName returns the table name
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		PersonID:    m.PersonID,
		Number:      m.Number,
		Date:        m.Date,
		DueDate:     m.DueDate,
		Description: m.Description,
		Amount:      m.Amount,
		Status:      billing.InvoiceStatus(m.Status),
	}
	inv.ID = m.ID
	inv.CreatedAt = m.CreatedAt
	inv.UpdatedAt = m.UpdatedAt
	inv.Version = m.Version
	inv.TenantID = m.TenantID
	return inv
}

// FromDomain populates the model from a domain invoice
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.ID = inv.ID
	m.CreatedAt = inv.CreatedAt
	m.UpdatedAt = inv.UpdatedAt
	m.Version = inv.Version
	m.TenantID = inv.TenantID
	m.PersonID = inv.PersonID
	m.Number = inv.Number
	m.Date = inv.Date
	m.DueDate = inv.DueDate
	m.Description = inv.Description
	m.Amount = inv.Amount
	m.Status = string(inv.Status)
}

// ReceiptModel is the persistence model for receipts
type ReceiptModel struct {
	TenantAggregateModel
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PersonID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Method    string          `gorm:"size:20;not null"`
	Notes     string          `gorm:"type:text"`
}

// TableName returns the table name
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the model to a domain receipt
func (m *ReceiptModel) ToDomain() *billing.Receipt {
	r := &billing.Receipt{
		InvoiceID: m.InvoiceID,
		PersonID:  m.PersonID,
		Amount:    m.Amount,
		Date:      m.Date,
		Method:    billing.PaymentMethod(m.Method),
		Notes:     m.Notes,
	}
	m.PopulateTenantAggregateRoot(&r.TenantAggregateRoot)
	return r
}

// FromDomain populates the model from a domain receipt
func (m *ReceiptModel) FromDomain(r *billing.Receipt) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.InvoiceID = r.InvoiceID
	m.PersonID = r.PersonID
	m.Amount = r.Amount
	m.Date = r.Date
	m.Method = string(r.Method)
	m.Notes = r.Notes
}
