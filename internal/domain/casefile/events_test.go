package casefile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionChangedEventSignals(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("always carries modal_close first", func(t *testing.T) {
		e := NewSectionChangedEvent(EventTypeIndemnitorsChanged, "Indemnitor", uuid.New(), tenantID, personID)
		assert.Equal(t, []string{SignalModalClose}, e.RefreshSignals())
	})

	t.Run("appends section specific signals", func(t *testing.T) {
		e := NewSectionChangedEvent(EventTypeCourtDatesChanged, "CourtDate", uuid.New(), tenantID, personID,
			SignalCourtDatesChanged)
		assert.Equal(t, []string{SignalModalClose, SignalCourtDatesChanged}, e.RefreshSignals())
	})
}

func TestPersonChangedEventSignals(t *testing.T) {
	p, err := NewPerson(uuid.New(), "Ada", "Lovelace", "", "", "", "")
	require.NoError(t, err)

	e := NewPersonChangedEvent(EventTypePersonUpdated, p)
	assert.Equal(t, []string{SignalPeopleListRefresh, SignalModalClose}, e.RefreshSignals())
	assert.Equal(t, EventTypePersonUpdated, e.EventType())
	assert.Equal(t, p.ID, e.AggregateID())
}

func TestCheckInDaysSince(t *testing.T) {
	ci, err := NewCheckIn(uuid.New(), uuid.New(), CheckInMethodPhone, "")
	require.NoError(t, err)

	assert.Equal(t, 0, ci.DaysSince(ci.CreatedAt))
	assert.Equal(t, 0, ci.DaysSince(ci.CreatedAt.Add(23*time.Hour)))
	assert.Equal(t, 3, ci.DaysSince(ci.CreatedAt.AddDate(0, 0, 3)))
}
