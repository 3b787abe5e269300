package casefile

import (
	"context"
	"testing"
	"time"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCourtDateRepository is a mock implementation of casefile.CourtDateRepository
type MockCourtDateRepository struct {
	mock.Mock
}

func (m *MockCourtDateRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*casefile.CourtDate, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.CourtDate), args.Error(1)
}

func (m *MockCourtDateRepository) Save(ctx context.Context, cd *casefile.CourtDate) error {
	args := m.Called(ctx, cd)
	return args.Error(0)
}

func (m *MockCourtDateRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCourtDateRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.CourtDate, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Get(0).([]casefile.CourtDate), args.Error(1)
}

func (m *MockCourtDateRepository) FindMostRecent(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.CourtDate, error) {
	args := m.Called(ctx, tenantID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.CourtDate), args.Error(1)
}

// MockCheckInRepository is a mock implementation of casefile.CheckInRepository
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*casefile.CheckIn, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) Save(ctx context.Context, ci *casefile.CheckIn) error {
	args := m.Called(ctx, ci)
	return args.Error(0)
}

func (m *MockCheckInRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCheckInRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.CheckIn, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Get(0).([]casefile.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindLatest(ctx context.Context, tenantID, personID uuid.UUID) (*casefile.CheckIn, error) {
	args := m.Called(ctx, tenantID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.CheckIn), args.Error(1)
}

func mustDate(t *testing.T, year int, month time.Month, day int) time.Time {
	t.Helper()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newWidgetFixture() (*WidgetService, *MockPersonRepository, *MockCourtDateRepository, *MockCheckInRepository) {
	people := new(MockPersonRepository)
	courtDates := new(MockCourtDateRepository)
	checkIns := new(MockCheckInRepository)
	return NewWidgetService(people, courtDates, checkIns), people, courtDates, checkIns
}

func TestWidgetServiceRecentCourtDate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("returns the repository's most recent", func(t *testing.T) {
		svc, people, courtDates, _ := newWidgetFixture()

		cd, err := casefile.NewCourtDate(tenantID, personID, mustDate(t, 2026, 10, 5), "14:00", "", "", "")
		require.NoError(t, err)

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
		courtDates.On("FindMostRecent", ctx, tenantID, personID).Return(cd, nil)

		got, err := svc.RecentCourtDate(ctx, tenantID, personID)
		require.NoError(t, err)
		assert.Equal(t, cd, got)
	})

	t.Run("empty section is nil, not an error", func(t *testing.T) {
		svc, people, courtDates, _ := newWidgetFixture()

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
		courtDates.On("FindMostRecent", ctx, tenantID, personID).Return(nil, shared.ErrNotFound)

		got, err := svc.RecentCourtDate(ctx, tenantID, personID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown person is an error", func(t *testing.T) {
		svc, people, _, _ := newWidgetFixture()

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(false, nil)

		_, err := svc.RecentCourtDate(ctx, tenantID, personID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestWidgetServiceLastCheckIn(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("computes days since the check-in", func(t *testing.T) {
		svc, people, _, checkIns := newWidgetFixture()

		ci, err := casefile.NewCheckIn(tenantID, personID, casefile.CheckInMethodWeb, "")
		require.NoError(t, err)

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
		checkIns.On("FindLatest", ctx, tenantID, personID).Return(ci, nil)

		got, err := svc.LastCheckIn(ctx, tenantID, personID, ci.CreatedAt.AddDate(0, 0, 5))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 5, got.DaysSince)
	})

	t.Run("no check-ins is nil, not an error", func(t *testing.T) {
		svc, people, _, checkIns := newWidgetFixture()

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
		checkIns.On("FindLatest", ctx, tenantID, personID).Return(nil, shared.ErrNotFound)

		got, err := svc.LastCheckIn(ctx, tenantID, personID, time.Now())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
