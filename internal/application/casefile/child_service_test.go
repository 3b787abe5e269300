package casefile

import (
	"context"
	"testing"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPersonRepository is a mock implementation of casefile.PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*casefile.Person, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.Person), args.Error(1)
}

func (m *MockPersonRepository) SearchForTenant(ctx context.Context, tenantID uuid.UUID, q string, filter shared.Filter) ([]casefile.Person, error) {
	args := m.Called(ctx, tenantID, q, filter)
	return args.Get(0).([]casefile.Person), args.Error(1)
}

func (m *MockPersonRepository) ExistsForTenant(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPersonRepository) Save(ctx context.Context, p *casefile.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockIndemnitorRepository is a mock implementation of casefile.IndemnitorRepository
type MockIndemnitorRepository struct {
	mock.Mock
}

func (m *MockIndemnitorRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*casefile.Indemnitor, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.Indemnitor), args.Error(1)
}

func (m *MockIndemnitorRepository) Save(ctx context.Context, ind *casefile.Indemnitor) error {
	args := m.Called(ctx, ind)
	return args.Error(0)
}

func (m *MockIndemnitorRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockIndemnitorRepository) ListByPerson(ctx context.Context, tenantID, personID uuid.UUID) ([]casefile.Indemnitor, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Get(0).([]casefile.Indemnitor), args.Error(1)
}

// MockEventPublisher records published domain events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func TestIndemnitorServiceCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	personID := uuid.New()

	t.Run("creates and announces the section change", func(t *testing.T) {
		repo := new(MockIndemnitorRepository)
		people := new(MockPersonRepository)
		bus := new(MockEventPublisher)
		svc := NewIndemnitorService(repo, people, bus)

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*casefile.Indemnitor")).Return(nil)

		var published []shared.DomainEvent
		bus.On("Publish", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				published = append(published, args.Get(1).([]shared.DomainEvent)...)
			}).
			Return(nil)

		ind, err := svc.Create(ctx, tenantID, personID, IndemnitorInput{
			Name:         "Grace Hopper",
			Relationship: "aunt",
		})
		require.NoError(t, err)
		assert.Equal(t, personID, ind.PersonID)

		require.Len(t, published, 1)
		event, ok := published[0].(*casefile.SectionChangedEvent)
		require.True(t, ok)
		assert.Equal(t, casefile.EventTypeIndemnitorsChanged, event.EventType())
		assert.Equal(t, []string{casefile.SignalModalClose}, event.RefreshSignals())
	})

	t.Run("unknown person yields not found", func(t *testing.T) {
		repo := new(MockIndemnitorRepository)
		people := new(MockPersonRepository)
		svc := NewIndemnitorService(repo, people, nil)

		people.On("ExistsForTenant", ctx, tenantID, personID).Return(false, nil)

		_, err := svc.Create(ctx, tenantID, personID, IndemnitorInput{Name: "X"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestChildServiceScoping(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("child of another person reads as missing", func(t *testing.T) {
		repo := new(MockIndemnitorRepository)
		people := new(MockPersonRepository)
		svc := NewIndemnitorService(repo, people, nil)

		ind, err := casefile.NewIndemnitor(tenantID, uuid.New(), "Owner", "", "", "", "")
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, ind.ID).Return(ind, nil)

		_, err = svc.Get(ctx, tenantID, uuid.New(), ind.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete guards ownership before touching the row", func(t *testing.T) {
		repo := new(MockIndemnitorRepository)
		people := new(MockPersonRepository)
		svc := NewIndemnitorService(repo, people, nil)

		ind, err := casefile.NewIndemnitor(tenantID, uuid.New(), "Owner", "", "", "", "")
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, ind.ID).Return(ind, nil)

		err = svc.Delete(ctx, tenantID, uuid.New(), ind.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteForTenant", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCourtDateServiceSignals(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	personID := uuid.New()

	repo := new(MockCourtDateRepository)
	people := new(MockPersonRepository)
	bus := new(MockEventPublisher)
	svc := NewCourtDateService(repo, people, bus)

	people.On("ExistsForTenant", ctx, tenantID, personID).Return(true, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*casefile.CourtDate")).Return(nil)

	var published []shared.DomainEvent
	bus.On("Publish", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			published = append(published, args.Get(1).([]shared.DomainEvent)...)
		}).
		Return(nil)

	_, err := svc.Create(ctx, tenantID, personID, CourtDateInput{
		Date:      mustDate(t, 2026, 9, 1),
		TimeOfDay: "09:30",
		Location:  "County Court",
	})
	require.NoError(t, err)

	require.Len(t, published, 1)
	signaler, ok := published[0].(shared.RefreshSignaler)
	require.True(t, ok)
	assert.Equal(t, []string{casefile.SignalModalClose, casefile.SignalCourtDatesChanged}, signaler.RefreshSignals())
}
