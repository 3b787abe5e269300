package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRow is one invoice with its derived paid and balance amounts.
type InvoiceRow struct {
	Invoice *Invoice
	Paid    decimal.Decimal
	Balance decimal.Decimal
}

// Totals are the person-level billing aggregates.
type Totals struct {
	Amount  decimal.Decimal
	Paid    decimal.Decimal
	Balance decimal.Decimal
}

// BuildInvoiceContext derives per-invoice paid/balance rows and the
// person-level totals from invoices and their receipts. Nothing here is
// ever stored; callers recompute on every request.
//
//	paid(i)    = sum of receipts applied to i
//	balance(i) = i.amount - paid(i)
//	totals     = column sums over all rows
func BuildInvoiceContext(invoices []Invoice, receipts []Receipt) ([]InvoiceRow, Totals) {
	paidByInvoice := make(map[uuid.UUID]decimal.Decimal, len(invoices))
	for _, r := range receipts {
		paidByInvoice[r.InvoiceID] = paidByInvoice[r.InvoiceID].Add(r.Amount)
	}

	rows := make([]InvoiceRow, 0, len(invoices))
	totals := Totals{
		Amount:  decimal.Zero,
		Paid:    decimal.Zero,
		Balance: decimal.Zero,
	}

	for idx := range invoices {
		inv := &invoices[idx]
		paid := paidByInvoice[inv.ID]
		balance := inv.Balance(paid)

		rows = append(rows, InvoiceRow{
			Invoice: inv,
			Paid:    paid,
			Balance: balance,
		})

		totals.Amount = totals.Amount.Add(inv.Amount)
		totals.Paid = totals.Paid.Add(paid)
	}
	totals.Balance = totals.Amount.Sub(totals.Paid)

	return rows, totals
}

// LastPaymentDate returns the most recent receipt date, or false when
// there are no receipts.
func LastPaymentDate(receipts []Receipt) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range receipts {
		if !found || r.Date.After(latest) {
			latest = r.Date
			found = true
		}
	}
	return latest, found
}
