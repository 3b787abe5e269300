package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBond(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("creates active bond", func(t *testing.T) {
		b, err := NewBond(tenantID, personID, decimal.NewFromInt(10000), nil, "FTA", "PWR-42")
		require.NoError(t, err)

		assert.Equal(t, tenantID, b.TenantID)
		assert.Equal(t, personID, b.PersonID)
		assert.Equal(t, BondStatusActive, b.Status)
		assert.Nil(t, b.Date)
	})

	t.Run("publishes bond created event", func(t *testing.T) {
		b, err := NewBond(tenantID, personID, decimal.NewFromInt(10000), nil, "", "")
		require.NoError(t, err)

		events := b.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBondCreated, events[0].EventType())
	})

	t.Run("fails with negative amount", func(t *testing.T) {
		_, err := NewBond(tenantID, personID, decimal.NewFromInt(-1), nil, "", "")
		require.Error(t, err)
	})

	t.Run("allows zero amount", func(t *testing.T) {
		b, err := NewBond(tenantID, personID, decimal.Zero, nil, "", "")
		require.NoError(t, err)
		assert.True(t, b.Amount.IsZero())
	})
}

func TestBondUpdate(t *testing.T) {
	b, err := NewBond(uuid.New(), uuid.New(), decimal.NewFromInt(100), nil, "", "")
	require.NoError(t, err)

	t.Run("keeps status when omitted", func(t *testing.T) {
		require.NoError(t, b.Update(decimal.NewFromInt(200), nil, "DUI", "PWR-1", ""))
		assert.Equal(t, BondStatusActive, b.Status)
	})

	t.Run("changes status when given", func(t *testing.T) {
		require.NoError(t, b.Update(decimal.NewFromInt(200), nil, "DUI", "PWR-1", BondStatusDischarged))
		assert.Equal(t, BondStatusDischarged, b.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := b.Update(decimal.NewFromInt(200), nil, "", "", BondStatus("CLOSED"))
		require.Error(t, err)
	})
}

func TestBondInvoiceNumber(t *testing.T) {
	b, err := NewBond(uuid.New(), uuid.New(), decimal.NewFromInt(100), nil, "", "")
	require.NoError(t, err)

	assert.Equal(t, "BOND-"+b.ID.String(), b.InvoiceNumber())
}

func TestBondRequiresInvoice(t *testing.T) {
	positive, err := NewBond(uuid.New(), uuid.New(), decimal.NewFromInt(1), nil, "", "")
	require.NoError(t, err)
	zero, err := NewBond(uuid.New(), uuid.New(), decimal.Zero, nil, "", "")
	require.NoError(t, err)

	assert.True(t, positive.RequiresInvoice())
	assert.False(t, zero.RequiresInvoice())
}

func TestBondEffectiveDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 45, 0, 0, time.UTC)

	t.Run("uses the bond date when set", func(t *testing.T) {
		date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		b, err := NewBond(uuid.New(), uuid.New(), decimal.NewFromInt(100), &date, "", "")
		require.NoError(t, err)

		assert.True(t, b.EffectiveDate(now).Equal(date))
	})

	t.Run("falls back to today without a date", func(t *testing.T) {
		b, err := NewBond(uuid.New(), uuid.New(), decimal.NewFromInt(100), nil, "", "")
		require.NoError(t, err)

		got := b.EffectiveDate(now)
		assert.True(t, got.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)))
	})
}
