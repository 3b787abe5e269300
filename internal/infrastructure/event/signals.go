package event

import (
	"context"
	"sync"

	"github.com/bondtrack/backend/internal/domain/shared"
)

type collectorKey struct{}

// SignalCollector accumulates frontend refresh signals raised by the
// domain events of one request. The HTTP layer drains it into the
// HX-Trigger response header. Deduplicated, order preserving.
type SignalCollector struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	signals []string
}

// NewSignalCollector creates an empty collector
func NewSignalCollector() *SignalCollector {
	return &SignalCollector{seen: make(map[string]struct{})}
}

// Add records signals, skipping ones already collected
func (c *SignalCollector) Add(signals ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range signals {
		if _, ok := c.seen[s]; ok {
			continue
		}
		c.seen[s] = struct{}{}
		c.signals = append(c.signals, s)
	}
}

// Signals returns the collected signals in arrival order
func (c *SignalCollector) Signals() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.signals))
	copy(out, c.signals)
	return out
}

// WithCollector attaches a collector to the context
func WithCollector(ctx context.Context, c *SignalCollector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// CollectorFromContext returns the request's collector, or nil
func CollectorFromContext(ctx context.Context) *SignalCollector {
	c, _ := ctx.Value(collectorKey{}).(*SignalCollector)
	return c
}

// SignalRelay is a catch-all event handler that copies refresh signals
// from signaling events into the request's collector. Publish is
// synchronous and carries the request context, so signals land in the
// same request that caused them.
type SignalRelay struct{}

// NewSignalRelay creates a new SignalRelay
func NewSignalRelay() *SignalRelay {
	return &SignalRelay{}
}

// Handle implements shared.EventHandler
func (r *SignalRelay) Handle(ctx context.Context, event shared.DomainEvent) error {
	signaler, ok := event.(shared.RefreshSignaler)
	if !ok {
		return nil
	}
	collector := CollectorFromContext(ctx)
	if collector == nil {
		return nil
	}
	collector.Add(signaler.RefreshSignals()...)
	return nil
}

// EventTypes implements shared.EventHandler; empty means all events
func (r *SignalRelay) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*SignalRelay)(nil)
