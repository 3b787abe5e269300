package dto

import (
	"time"

	appbilling "github.com/bondtrack/backend/internal/application/billing"
	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// TenantResponse is the tenant profile wire shape
type TenantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewTenantResponse maps a tenant to its wire shape
func NewTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		ContactEmail: t.ContactEmail,
		Phone:        t.Phone,
		Address:      t.Address,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// PersonResponse is the person wire shape
type PersonResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPersonResponse maps a person to its wire shape
func NewPersonResponse(p *casefile.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPersonListResponse maps a slice of people
func NewPersonListResponse(people []casefile.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for i := range people {
		out = append(out, NewPersonResponse(&people[i]))
	}
	return out
}

// IndemnitorResponse is the indemnitor wire shape
type IndemnitorResponse struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"person_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewIndemnitorResponse maps an indemnitor to its wire shape
func NewIndemnitorResponse(i *casefile.Indemnitor) IndemnitorResponse {
	return IndemnitorResponse{
		ID:           i.ID.String(),
		PersonID:     i.PersonID.String(),
		Name:         i.Name,
		Relationship: i.Relationship,
		Phone:        i.Phone,
		Email:        i.Email,
		Address:      i.Address,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// NewIndemnitorListResponse maps a slice of indemnitors
func NewIndemnitorListResponse(items []casefile.Indemnitor) []IndemnitorResponse {
	out := make([]IndemnitorResponse, 0, len(items))
	for i := range items {
		out = append(out, NewIndemnitorResponse(&items[i]))
	}
	return out
}

// ReferenceResponse is the reference wire shape
type ReferenceResponse struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"person_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewReferenceResponse maps a reference to its wire shape
func NewReferenceResponse(r *casefile.Reference) ReferenceResponse {
	return ReferenceResponse{
		ID:           r.ID.String(),
		PersonID:     r.PersonID.String(),
		Name:         r.Name,
		Relationship: r.Relationship,
		Phone:        r.Phone,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// NewReferenceListResponse maps a slice of references
func NewReferenceListResponse(items []casefile.Reference) []ReferenceResponse {
	out := make([]ReferenceResponse, 0, len(items))
	for i := range items {
		out = append(out, NewReferenceResponse(&items[i]))
	}
	return out
}

// CourtDateResponse is the court date wire shape
type CourtDateResponse struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Room      string    `json:"room"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCourtDateResponse maps a court date to its wire shape
func NewCourtDateResponse(cd *casefile.CourtDate) CourtDateResponse {
	return CourtDateResponse{
		ID:        cd.ID.String(),
		PersonID:  cd.PersonID.String(),
		Date:      formatDate(cd.Date),
		Time:      cd.TimeOfDay,
		Location:  cd.Location,
		Room:      cd.Room,
		Notes:     cd.Notes,
		CreatedAt: cd.CreatedAt,
		UpdatedAt: cd.UpdatedAt,
	}
}

// NewCourtDateListResponse maps a slice of court dates
func NewCourtDateListResponse(items []casefile.CourtDate) []CourtDateResponse {
	out := make([]CourtDateResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCourtDateResponse(&items[i]))
	}
	return out
}

// CheckInResponse is the check-in wire shape
type CheckInResponse struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Method    string    `json:"method"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCheckInResponse maps a check-in to its wire shape
func NewCheckInResponse(ci *casefile.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:        ci.ID.String(),
		PersonID:  ci.PersonID.String(),
		Method:    string(ci.Method),
		Notes:     ci.Notes,
		CreatedAt: ci.CreatedAt,
		UpdatedAt: ci.UpdatedAt,
	}
}

// NewCheckInListResponse maps a slice of check-ins
func NewCheckInListResponse(items []casefile.CheckIn) []CheckInResponse {
	out := make([]CheckInResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCheckInResponse(&items[i]))
	}
	return out
}

// BondResponse is the bond wire shape
type BondResponse struct {
	ID          string          `json:"id"`
	PersonID    string          `json:"person_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *string         `json:"date"`
	Offense     string          `json:"offense"`
	PowerNumber string          `json:"power_number"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewBondResponse maps a bond to its wire shape
func NewBondResponse(b *billing.Bond) BondResponse {
	return BondResponse{
		ID:          b.ID.String(),
		PersonID:    b.PersonID.String(),
		Amount:      b.Amount,
		Date:        formatDatePtr(b.Date),
		Offense:     b.Offense,
		PowerNumber: b.PowerNumber,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// NewBondListResponse maps a slice of bonds
func NewBondListResponse(items []billing.Bond) []BondResponse {
	out := make([]BondResponse, 0, len(items))
	for i := range items {
		out = append(out, NewBondResponse(&items[i]))
	}
	return out
}

// InvoiceResponse is the invoice wire shape
type InvoiceResponse struct {
	ID          string          `json:"id"`
	PersonID    string          `json:"person_id"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	DueDate     *string         `json:"due_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewInvoiceResponse maps an invoice to its wire shape
func NewInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID.String(),
		PersonID:    inv.PersonID.String(),
		Number:      inv.Number,
		Date:        formatDate(inv.Date),
		DueDate:     formatDatePtr(inv.DueDate),
		Description: inv.Description,
		Amount:      inv.Amount,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// ReceiptResponse is the receipt wire shape
type ReceiptResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	PersonID  string          `json:"person_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Method    string          `json:"method"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewReceiptResponse maps a receipt to its wire shape
func NewReceiptResponse(r *billing.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:        r.ID.String(),
		InvoiceID: r.InvoiceID.String(),
		PersonID:  r.PersonID.String(),
		Amount:    r.Amount,
		Date:      formatDate(r.Date),
		Method:    string(r.Method),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewReceiptListResponse maps a slice of receipts
func NewReceiptListResponse(items []billing.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(items))
	for i := range items {
		out = append(out, NewReceiptResponse(&items[i]))
	}
	return out
}

// TotalsResponse is the billing totals wire shape
type TotalsResponse struct {
	Amount  decimal.Decimal `json:"amount"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

// NewTotalsResponse maps billing totals
func NewTotalsResponse(t billing.Totals) TotalsResponse {
	return TotalsResponse{
		Amount:  t.Amount,
		Paid:    t.Paid,
		Balance: t.Balance,
	}
}

// InvoiceRowResponse is one invoice with derived paid and balance
type InvoiceRowResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

// InvoiceContextResponse is the person billing page wire shape
type InvoiceContextResponse struct {
	Rows   []InvoiceRowResponse `json:"rows"`
	Totals TotalsResponse       `json:"totals"`
}

// NewInvoiceContextResponse maps the invoice context read model
func NewInvoiceContextResponse(ctx *appbilling.InvoiceContext) InvoiceContextResponse {
	rows := make([]InvoiceRowResponse, 0, len(ctx.Rows))
	for _, row := range ctx.Rows {
		rows = append(rows, InvoiceRowResponse{
			Invoice: NewInvoiceResponse(row.Invoice),
			Paid:    row.Paid,
			Balance: row.Balance,
		})
	}
	return InvoiceContextResponse{
		Rows:   rows,
		Totals: NewTotalsResponse(ctx.Totals),
	}
}

// BillingSummaryResponse is the billing widget wire shape
type BillingSummaryResponse struct {
	Totals               TotalsResponse `json:"totals"`
	LastPaymentDate      *string        `json:"last_payment_date"`
	DaysSinceLastPayment *int           `json:"days_since_last_payment"`
}

// NewBillingSummaryResponse maps the billing summary read model
func NewBillingSummaryResponse(s *appbilling.Summary) BillingSummaryResponse {
	return BillingSummaryResponse{
		Totals:               NewTotalsResponse(s.Totals),
		LastPaymentDate:      formatDatePtr(s.LastPaymentDate),
		DaysSinceLastPayment: s.DaysSinceLastPayment,
	}
}

// RecentCourtDateResponse is the recent court date widget wire shape.
// CourtDate is null when nothing is scheduled.
type RecentCourtDateResponse struct {
	CourtDate *CourtDateResponse `json:"court_date"`
}

// NewRecentCourtDateResponse maps the recent court date widget
func NewRecentCourtDateResponse(cd *casefile.CourtDate) RecentCourtDateResponse {
	if cd == nil {
		return RecentCourtDateResponse{}
	}
	resp := NewCourtDateResponse(cd)
	return RecentCourtDateResponse{CourtDate: &resp}
}

// LastCheckInResponse is the last check-in widget wire shape. CheckIn
// is null when the person has never checked in.
type LastCheckInResponse struct {
	CheckIn   *CheckInResponse `json:"check_in"`
	DaysSince *int             `json:"days_since"`
}

// NewLastCheckInResponse maps the last check-in widget
func NewLastCheckInResponse(result *appcasefile.LastCheckInResult) LastCheckInResponse {
	if result == nil {
		return LastCheckInResponse{}
	}
	resp := NewCheckInResponse(result.CheckIn)
	days := result.DaysSince
	return LastCheckInResponse{CheckIn: &resp, DaysSince: &days}
}

// CourtNoticeResponse is the printable court notice wire shape
type CourtNoticeResponse struct {
	Agency      TenantResponse    `json:"agency"`
	Person      PersonResponse    `json:"person"`
	CourtDate   CourtDateResponse `json:"court_date"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// NewCourtNoticeResponse maps the court notice read model
func NewCourtNoticeResponse(n *appbilling.CourtNotice) CourtNoticeResponse {
	return CourtNoticeResponse{
		Agency:      NewTenantResponse(n.Agency),
		Person:      NewPersonResponse(n.Person),
		CourtDate:   NewCourtDateResponse(n.CourtDate),
		GeneratedAt: n.GeneratedAt,
	}
}

// ReceiptDocumentResponse is the printable receipt wire shape
type ReceiptDocumentResponse struct {
	Agency          TenantResponse  `json:"agency"`
	Person          PersonResponse  `json:"person"`
	Invoice         InvoiceResponse `json:"invoice"`
	Receipt         ReceiptResponse `json:"receipt"`
	InvoiceTotal    decimal.Decimal `json:"invoice_total"`
	TotalPaidToDate decimal.Decimal `json:"total_paid_to_date"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// NewReceiptDocumentResponse maps the receipt document read model
func NewReceiptDocumentResponse(d *appbilling.ReceiptDocument) ReceiptDocumentResponse {
	return ReceiptDocumentResponse{
		Agency:          NewTenantResponse(d.Agency),
		Person:          NewPersonResponse(d.Person),
		Invoice:         NewInvoiceResponse(d.Invoice),
		Receipt:         NewReceiptResponse(d.Receipt),
		InvoiceTotal:    d.InvoiceTotal,
		TotalPaidToDate: d.TotalPaidToDate,
		BalanceAfter:    d.BalanceAfter,
		GeneratedAt:     d.GeneratedAt,
	}
}
