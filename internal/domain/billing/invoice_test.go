package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates unpaid invoice with valid inputs", func(t *testing.T) {
		inv, err := NewInvoice(tenantID, personID, "INV-001", date, nil, "Bail bond fee", decimal.NewFromInt(5000))
		require.NoError(t, err)
		require.NotNil(t, inv)

		assert.Equal(t, tenantID, inv.TenantID)
		assert.Equal(t, personID, inv.PersonID)
		assert.Equal(t, "INV-001", inv.Number)
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
		assert.NotEmpty(t, inv.ID)
	})

	t.Run("trims the number", func(t *testing.T) {
		inv, err := NewInvoice(tenantID, personID, "  INV-002  ", date, nil, "", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, "INV-002", inv.Number)
	})

	t.Run("fails with empty number", func(t *testing.T) {
		_, err := NewInvoice(tenantID, personID, "   ", date, nil, "", decimal.NewFromInt(100))
		require.Error(t, err)
	})

	t.Run("fails with negative amount", func(t *testing.T) {
		_, err := NewInvoice(tenantID, personID, "INV-003", date, nil, "", decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("allows a zero amount", func(t *testing.T) {
		inv, err := NewInvoice(tenantID, personID, "INV-004", date, nil, "", decimal.Zero)
		require.NoError(t, err)
		assert.True(t, inv.Amount.IsZero())
	})

	t.Run("fails with zero date", func(t *testing.T) {
		_, err := NewInvoice(tenantID, personID, "INV-005", time.Time{}, nil, "", decimal.NewFromInt(100))
		require.Error(t, err)
	})
}

func TestInvoiceBalance(t *testing.T) {
	inv := mustInvoice(t, "INV-100", decimal.NewFromInt(1000))

	assert.True(t, inv.Balance(decimal.Zero).Equal(decimal.NewFromInt(1000)))
	assert.True(t, inv.Balance(decimal.NewFromInt(400)).Equal(decimal.NewFromInt(600)))
	assert.True(t, inv.Balance(decimal.NewFromInt(1000)).IsZero())
	// Overpayment drives the balance negative; the floor only applies
	// on the printed receipt.
	assert.True(t, inv.Balance(decimal.NewFromInt(1200)).Equal(decimal.NewFromInt(-200)))
}

func TestInvoiceReconcileStatus(t *testing.T) {
	t.Run("settles when fully paid", func(t *testing.T) {
		inv := mustInvoice(t, "INV-200", decimal.NewFromInt(500))

		changed := inv.ReconcileStatus(decimal.NewFromInt(500))
		assert.True(t, changed)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("settles on overpayment", func(t *testing.T) {
		inv := mustInvoice(t, "INV-201", decimal.NewFromInt(500))

		changed := inv.ReconcileStatus(decimal.NewFromInt(600))
		assert.True(t, changed)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("stays unpaid on partial payment", func(t *testing.T) {
		inv := mustInvoice(t, "INV-202", decimal.NewFromInt(500))

		changed := inv.ReconcileStatus(decimal.NewFromInt(499))
		assert.False(t, changed)
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
	})

	t.Run("reopens when payments drop below the amount", func(t *testing.T) {
		inv := mustInvoice(t, "INV-203", decimal.NewFromInt(500))
		inv.ReconcileStatus(decimal.NewFromInt(500))
		require.Equal(t, InvoiceStatusPaid, inv.Status)

		changed := inv.ReconcileStatus(decimal.NewFromInt(300))
		assert.True(t, changed)
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
	})

	t.Run("reports no change when already settled", func(t *testing.T) {
		inv := mustInvoice(t, "INV-204", decimal.NewFromInt(500))
		inv.ReconcileStatus(decimal.NewFromInt(500))

		changed := inv.ReconcileStatus(decimal.NewFromInt(500))
		assert.False(t, changed)
	})
}

func TestBuildInvoiceContext(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty ledger yields zero totals", func(t *testing.T) {
		rows, totals := BuildInvoiceContext(nil, nil)
		assert.Empty(t, rows)
		assert.True(t, totals.Amount.IsZero())
		assert.True(t, totals.Paid.IsZero())
		assert.True(t, totals.Balance.IsZero())
	})

	t.Run("derives per-invoice paid and balance", func(t *testing.T) {
		inv1 := mustInvoice(t, "INV-300", decimal.NewFromInt(1000))
		inv2 := mustInvoice(t, "INV-301", decimal.NewFromInt(250))

		r1, err := NewReceipt(tenantID, inv1.ID, personID, decimal.NewFromInt(400), date, PaymentMethodCash, "")
		require.NoError(t, err)
		r2, err := NewReceipt(tenantID, inv1.ID, personID, decimal.NewFromInt(100), date, PaymentMethodCard, "")
		require.NoError(t, err)
		r3, err := NewReceipt(tenantID, inv2.ID, personID, decimal.NewFromInt(250), date, PaymentMethodCheck, "")
		require.NoError(t, err)

		rows, totals := BuildInvoiceContext([]Invoice{*inv1, *inv2}, []Receipt{*r1, *r2, *r3})
		require.Len(t, rows, 2)

		assert.True(t, rows[0].Paid.Equal(decimal.NewFromInt(500)))
		assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(500)))
		assert.True(t, rows[1].Paid.Equal(decimal.NewFromInt(250)))
		assert.True(t, rows[1].Balance.IsZero())

		assert.True(t, totals.Amount.Equal(decimal.NewFromInt(1250)))
		assert.True(t, totals.Paid.Equal(decimal.NewFromInt(750)))
		assert.True(t, totals.Balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("ignores receipts for other invoices", func(t *testing.T) {
		inv := mustInvoice(t, "INV-302", decimal.NewFromInt(100))
		stray, err := NewReceipt(tenantID, uuid.New(), personID, decimal.NewFromInt(50), date, PaymentMethodCash, "")
		require.NoError(t, err)

		rows, totals := BuildInvoiceContext([]Invoice{*inv}, []Receipt{*stray})
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Paid.IsZero())
		assert.True(t, totals.Paid.IsZero())
	})
}

func TestLastPaymentDate(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()
	invoiceID := uuid.New()

	t.Run("no receipts", func(t *testing.T) {
		_, ok := LastPaymentDate(nil)
		assert.False(t, ok)
	})

	t.Run("returns the latest receipt date", func(t *testing.T) {
		early, err := NewReceipt(tenantID, invoiceID, personID, decimal.NewFromInt(10),
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), PaymentMethodCash, "")
		require.NoError(t, err)
		late, err := NewReceipt(tenantID, invoiceID, personID, decimal.NewFromInt(10),
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), PaymentMethodCash, "")
		require.NoError(t, err)

		got, ok := LastPaymentDate([]Receipt{*late, *early})
		require.True(t, ok)
		assert.True(t, got.Equal(late.Date))
	})
}

func mustInvoice(t *testing.T, number string, amount decimal.Decimal) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), uuid.New(), number,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil, "", amount)
	require.NoError(t, err)
	return inv
}
