package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for times of day
const TimeLayout = "15:04"

// ParseDate parses a wire date in the server's local zone
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseDatePtr parses an optional wire date
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TenantRequest is the tenant profile payload
type TenantRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=50"`
	Address      string `json:"address" binding:"max=500"`
}

// PersonRequest is the person create/update payload
type PersonRequest struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address" binding:"max=500"`
	Notes     string `json:"notes"`
}

// PeopleListRequest is the people list query
type PeopleListRequest struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// IndemnitorRequest is the indemnitor create/update payload
type IndemnitorRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Relationship string `json:"relationship" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address" binding:"max=500"`
}

// ReferenceRequest is the reference create/update payload
type ReferenceRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Relationship string `json:"relationship" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Notes        string `json:"notes"`
}

// CourtDateRequest is the court date create/update payload. Time is
// "HH:MM" 24-hour, empty when the docket only lists a day.
type CourtDateRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"omitempty,datetime=15:04"`
	Location string `json:"location" binding:"max=255"`
	Room     string `json:"room" binding:"max=100"`
	Notes    string `json:"notes"`
}

// CheckInRequest is the check-in create/update payload
type CheckInRequest struct {
	Method string `json:"method" binding:"omitempty,oneof=in_person phone web"`
	Notes  string `json:"notes"`
}

// BondRequest is the bond create/update payload. A zero amount is
// legal and simply never bills.
type BondRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        *string         `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Offense     string          `json:"offense" binding:"max=500"`
	PowerNumber string          `json:"power_number" binding:"max=100"`
	Status      string          `json:"status" binding:"omitempty,oneof=ACTIVE DISCHARGED FORFEITED"`
}

// InvoiceRequest is the manual invoice create/update payload
type InvoiceRequest struct {
	Number      string          `json:"number" binding:"required,max=64"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate     *string         `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReceiptRequest is the receipt create/update payload
type ReceiptRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
	Method string          `json:"method" binding:"omitempty,oneof=cash card check other"`
	Notes  string          `json:"notes"`
}
