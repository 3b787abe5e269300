package event

import (
	"context"
	"testing"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSignalCollector(t *testing.T) {
	t.Run("preserves arrival order", func(t *testing.T) {
		c := NewSignalCollector()
		c.Add("modal_close", "billing_changed")
		c.Add("court_dates_changed")

		assert.Equal(t, []string{"modal_close", "billing_changed", "court_dates_changed"}, c.Signals())
	})

	t.Run("deduplicates", func(t *testing.T) {
		c := NewSignalCollector()
		c.Add("modal_close")
		c.Add("modal_close", "billing_changed")
		c.Add("billing_changed")

		assert.Equal(t, []string{"modal_close", "billing_changed"}, c.Signals())
	})

	t.Run("empty collector yields no signals", func(t *testing.T) {
		assert.Empty(t, NewSignalCollector().Signals())
	})
}

func TestCollectorFromContext(t *testing.T) {
	t.Run("round trips through the context", func(t *testing.T) {
		c := NewSignalCollector()
		ctx := WithCollector(context.Background(), c)
		assert.Same(t, c, CollectorFromContext(ctx))
	})

	t.Run("missing collector is nil", func(t *testing.T) {
		assert.Nil(t, CollectorFromContext(context.Background()))
	})
}

func TestSignalRelay(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("copies signals from signaling events", func(t *testing.T) {
		relay := NewSignalRelay()
		c := NewSignalCollector()
		ctx := WithCollector(context.Background(), c)

		e := casefile.NewSectionChangedEvent(casefile.EventTypeCheckInsChanged, "CheckIn",
			uuid.New(), tenantID, personID, casefile.SignalCheckInsChanged)

		require.NoError(t, relay.Handle(ctx, e))
		assert.Equal(t, []string{casefile.SignalModalClose, casefile.SignalCheckInsChanged}, c.Signals())
	})

	t.Run("ignores non signaling events", func(t *testing.T) {
		relay := NewSignalRelay()
		c := NewSignalCollector()
		ctx := WithCollector(context.Background(), c)

		e := shared.NewBaseDomainEvent("tenant.updated", "Tenant", tenantID, tenantID)
		require.NoError(t, relay.Handle(ctx, &e))
		assert.Empty(t, c.Signals())
	})

	t.Run("no collector in context is a no-op", func(t *testing.T) {
		relay := NewSignalRelay()
		e := casefile.NewSectionChangedEvent(casefile.EventTypeCheckInsChanged, "CheckIn",
			uuid.New(), tenantID, personID)
		require.NoError(t, relay.Handle(context.Background(), e))
	})
}

func TestBusDeliversToRelay(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	bus.Subscribe(NewSignalRelay())
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Stop(context.Background()) }()

	c := NewSignalCollector()
	ctx := WithCollector(context.Background(), c)

	tenantID := uuid.New()
	e := casefile.NewSectionChangedEvent(casefile.EventTypeCourtDatesChanged, "CourtDate",
		uuid.New(), tenantID, uuid.New(), casefile.SignalCourtDatesChanged)

	require.NoError(t, bus.Publish(ctx, e))
	assert.Equal(t, []string{casefile.SignalModalClose, casefile.SignalCourtDatesChanged}, c.Signals())
}
