package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/bondtrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPersonRepo struct {
	known map[uuid.UUID]uuid.UUID // person id -> tenant id
}

func (r *stubPersonRepo) FindByIDForTenant(_ context.Context, _, _ uuid.UUID) (*casefile.Person, error) {
	return nil, shared.ErrNotFound
}

func (r *stubPersonRepo) SearchForTenant(_ context.Context, _ uuid.UUID, _ string, _ shared.Filter) ([]casefile.Person, error) {
	return nil, nil
}

func (r *stubPersonRepo) ExistsForTenant(_ context.Context, tenantID, id uuid.UUID) (bool, error) {
	return r.known[id] == tenantID, nil
}

func (r *stubPersonRepo) Save(_ context.Context, _ *casefile.Person) error { return nil }

func (r *stubPersonRepo) DeleteForTenant(_ context.Context, _, _ uuid.UUID) error {
	return shared.ErrNotFound
}

// stubChildRepo serves a single seeded record per section.
type stubChildRepo[T any] struct {
	tenantID uuid.UUID
	id       uuid.UUID
	item     *T
}

func (r *stubChildRepo[T]) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*T, error) {
	if r.item != nil && tenantID == r.tenantID && id == r.id {
		return r.item, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubChildRepo[T]) ListByPerson(_ context.Context, _, _ uuid.UUID) ([]T, error) {
	return nil, nil
}

func (r *stubChildRepo[T]) Save(_ context.Context, _ *T) error { return nil }

func (r *stubChildRepo[T]) DeleteForTenant(_ context.Context, _, _ uuid.UUID) error {
	return shared.ErrNotFound
}

type stubCourtDateRepo struct {
	stubChildRepo[casefile.CourtDate]
}

func (r *stubCourtDateRepo) FindMostRecent(_ context.Context, _, _ uuid.UUID) (*casefile.CourtDate, error) {
	return nil, shared.ErrNotFound
}

type stubCheckInRepo struct {
	stubChildRepo[casefile.CheckIn]
}

func (r *stubCheckInRepo) FindLatest(_ context.Context, _, _ uuid.UUID) (*casefile.CheckIn, error) {
	return nil, shared.ErrNotFound
}

// Every child section exposes GET on a single record; each handler is
// wired end to end through a real service and a seeded repository.
func TestChildSectionDetailRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tenantID := uuid.New()
	personID := uuid.New()
	people := &stubPersonRepo{known: map[uuid.UUID]uuid.UUID{personID: tenantID}}

	ind, err := casefile.NewIndemnitor(tenantID, personID, "Rosa Reyes", "mother", "", "", "")
	require.NoError(t, err)
	ref, err := casefile.NewReference(tenantID, personID, "Sam Ortiz", "employer", "", "")
	require.NoError(t, err)
	cd, err := casefile.NewCourtDate(tenantID, personID, mustDay(2026, 9, 15), "09:00", "Dept 12", "", "")
	require.NoError(t, err)
	ci, err := casefile.NewCheckIn(tenantID, personID, casefile.CheckInMethodPhone, "")
	require.NoError(t, err)

	courtDates := &stubCourtDateRepo{}
	courtDates.tenantID, courtDates.id, courtDates.item = tenantID, cd.ID, cd
	checkIns := &stubCheckInRepo{}
	checkIns.tenantID, checkIns.id, checkIns.item = tenantID, ci.ID, ci

	indemnitorH := NewIndemnitorHandler(appcasefile.NewIndemnitorService(
		&stubChildRepo[casefile.Indemnitor]{tenantID: tenantID, id: ind.ID, item: ind}, people, nil))
	referenceH := NewReferenceHandler(appcasefile.NewReferenceService(
		&stubChildRepo[casefile.Reference]{tenantID: tenantID, id: ref.ID, item: ref}, people, nil))
	courtDateH := NewCourtDateHandler(appcasefile.NewCourtDateService(courtDates, people, nil))
	checkInH := NewCheckInHandler(appcasefile.NewCheckInService(checkIns, people, nil))

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.TenantIDKey, tenantID)
		c.Next()
	})
	engine.GET("/people/:id/indemnitors/:childID", indemnitorH.Get)
	engine.GET("/people/:id/references/:childID", referenceH.Get)
	engine.GET("/people/:id/court-dates/:childID", courtDateH.Get)
	engine.GET("/people/:id/check-ins/:childID", checkInH.Get)

	cases := []struct {
		section string
		childID uuid.UUID
	}{
		{"indemnitors", ind.ID},
		{"references", ref.ID},
		{"court-dates", cd.ID},
		{"check-ins", ci.ID},
	}

	for _, tc := range cases {
		t.Run(tc.section, func(t *testing.T) {
			url := "/people/" + personID.String() + "/" + tc.section + "/" + tc.childID.String()
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

			require.Equal(t, http.StatusOK, w.Code)

			var body dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.True(t, body.Success)
			assert.Contains(t, w.Body.String(), tc.childID.String())
		})

		t.Run(tc.section+" under another person is not found", func(t *testing.T) {
			url := "/people/" + uuid.NewString() + "/" + tc.section + "/" + tc.childID.String()
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func mustDay(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
