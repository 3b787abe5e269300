package casefile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourtDate(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("truncates the date to midnight", func(t *testing.T) {
		cd, err := NewCourtDate(tenantID, personID,
			time.Date(2026, 7, 4, 14, 30, 12, 0, time.UTC), "09:00", "County Court", "3B", "")
		require.NoError(t, err)

		assert.True(t, cd.Date.Equal(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "09:00", cd.TimeOfDay)
	})

	t.Run("allows empty time", func(t *testing.T) {
		cd, err := NewCourtDate(tenantID, personID,
			time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), "", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, cd.TimeOfDay)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		for _, bad := range []string{"9:00", "24:00", "12:60", "noon"} {
			_, err := NewCourtDate(tenantID, personID,
				time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), bad, "", "", "")
			require.Error(t, err, "time %q should be rejected", bad)
		}
	})

	t.Run("rejects zero date", func(t *testing.T) {
		_, err := NewCourtDate(tenantID, personID, time.Time{}, "", "", "", "")
		require.Error(t, err)
	})
}

func TestCourtDateAfter(t *testing.T) {
	tenantID := uuid.New()
	personID := uuid.New()
	day := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	mk := func(date time.Time, timeOfDay string) *CourtDate {
		cd, err := NewCourtDate(tenantID, personID, date, timeOfDay, "", "", "")
		require.NoError(t, err)
		return cd
	}

	t.Run("later date wins", func(t *testing.T) {
		a := mk(day, "16:00")
		b := mk(day.AddDate(0, 0, 1), "08:00")
		assert.True(t, b.After(a))
		assert.False(t, a.After(b))
	})

	t.Run("later time breaks a date tie", func(t *testing.T) {
		a := mk(day, "09:00")
		b := mk(day, "14:00")
		assert.True(t, b.After(a))
	})

	t.Run("set time sorts after empty time", func(t *testing.T) {
		a := mk(day, "")
		b := mk(day, "00:00")
		assert.True(t, b.After(a))
	})

	t.Run("id breaks a full tie deterministically", func(t *testing.T) {
		a := mk(day, "09:00")
		b := mk(day, "09:00")
		assert.NotEqual(t, a.After(b), b.After(a))
	})
}
