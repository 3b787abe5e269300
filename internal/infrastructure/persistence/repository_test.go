package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bondtrack/backend/internal/infrastructure/persistence/models"
)

// testDB opens an in-memory sqlite database and migrates the full
// schema, unique indexes included. MaxOpenConns(1) keeps every query
// on the single connection that owns the in-memory database.
func testDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.TenantModel{},
		&models.UserModel{},
		&models.PersonModel{},
		&models.IndemnitorModel{},
		&models.ReferenceModel{},
		&models.CourtDateModel{},
		&models.CheckInModel{},
		&models.BondModel{},
		&models.InvoiceModel{},
		&models.ReceiptModel{},
	))

	return &Database{DB: db}
}

func seedPerson(t *testing.T, db *Database, tenantID uuid.UUID, first, last, phone, email string) *casefile.Person {
	t.Helper()
	p, err := casefile.NewPerson(tenantID, first, last, phone, email, "", "")
	require.NoError(t, err)
	require.NoError(t, NewGormPersonRepository(db).Save(context.Background(), p))
	return p
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInvoiceGetOrCreate(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewGormInvoiceRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")

	newInvoice := func(t *testing.T, tid uuid.UUID) *billing.Invoice {
		t.Helper()
		inv, err := billing.NewInvoice(tid, person.ID, "BOND-abc123", day(2026, 8, 1), nil,
			"Bail bond PWR-100", decimal.NewFromInt(5000))
		require.NoError(t, err)
		return inv
	}

	t.Run("first caller creates the invoice", func(t *testing.T) {
		got, created, err := repo.GetOrCreate(ctx, newInvoice(t, tenantID))
		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, got)

		persisted, err := repo.FindByNumberForTenant(ctx, tenantID, "BOND-abc123")
		require.NoError(t, err)
		assert.Equal(t, got.ID, persisted.ID)
		assert.True(t, persisted.Amount.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("second caller gets the existing row back", func(t *testing.T) {
		winner, err := repo.FindByNumberForTenant(ctx, tenantID, "BOND-abc123")
		require.NoError(t, err)

		got, created, err := repo.GetOrCreate(ctx, newInvoice(t, tenantID))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner.ID, got.ID)
	})

	t.Run("same number under another tenant is a fresh invoice", func(t *testing.T) {
		otherTenant := uuid.New()
		got, created, err := repo.GetOrCreate(ctx, newInvoice(t, otherTenant))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, otherTenant, got.TenantID)
	})
}

func TestInvoiceDeleteCascadesReceipts(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	invoices := NewGormInvoiceRepository(db)
	receipts := NewGormReceiptRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")

	inv, err := billing.NewInvoice(tenantID, person.ID, "INV-100", day(2026, 8, 1), nil, "", decimal.NewFromInt(250))
	require.NoError(t, err)
	require.NoError(t, invoices.Save(ctx, inv))

	rc, err := billing.NewReceipt(tenantID, inv.ID, person.ID, decimal.NewFromInt(100),
		day(2026, 8, 2), billing.PaymentMethodCash, "")
	require.NoError(t, err)
	require.NoError(t, receipts.Save(ctx, rc))

	t.Run("wrong tenant deletes nothing", func(t *testing.T) {
		err := invoices.DeleteForTenant(ctx, uuid.New(), inv.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = receipts.FindByIDForTenant(ctx, tenantID, rc.ID)
		assert.NoError(t, err)
	})

	t.Run("delete removes invoice and receipts", func(t *testing.T) {
		require.NoError(t, invoices.DeleteForTenant(ctx, tenantID, inv.ID))

		_, err := invoices.FindByIDForTenant(ctx, tenantID, inv.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = receipts.FindByIDForTenant(ctx, tenantID, rc.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPersonSearchForTenant(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewGormPersonRepository(db)

	tenantID := uuid.New()
	otherTenant := uuid.New()

	seedPerson(t, db, tenantID, "Miguel", "Alvarez", "555-0101", "miguel@example.com")
	seedPerson(t, db, tenantID, "Ana", "Alvarez", "555-0102", "ana@example.com")
	seedPerson(t, db, tenantID, "Joan", "Baker", "555-0200", "jbaker@example.com")
	seedPerson(t, db, otherTenant, "Casey", "Alvarez", "555-0300", "casey@example.com")

	t.Run("empty query lists the whole tenant ordered by name", func(t *testing.T) {
		people, err := repo.SearchForTenant(ctx, tenantID, "", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, people, 3)
		assert.Equal(t, "Ana", people[0].FirstName)
		assert.Equal(t, "Miguel", people[1].FirstName)
		assert.Equal(t, "Baker", people[2].LastName)
	})

	t.Run("match is case-insensitive and substring", func(t *testing.T) {
		people, err := repo.SearchForTenant(ctx, tenantID, "ALVAR", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, people, 2)
		assert.Equal(t, "Ana", people[0].FirstName)
		assert.Equal(t, "Miguel", people[1].FirstName)
	})

	t.Run("phone and email are searchable", func(t *testing.T) {
		people, err := repo.SearchForTenant(ctx, tenantID, "555-0200", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Joan", people[0].FirstName)

		people, err = repo.SearchForTenant(ctx, tenantID, "jbaker@", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Baker", people[0].LastName)
	})

	t.Run("never leaks another tenant's people", func(t *testing.T) {
		people, err := repo.SearchForTenant(ctx, tenantID, "casey", shared.DefaultFilter())
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		people, err := repo.SearchForTenant(ctx, tenantID, "", shared.Filter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Ana", people[0].FirstName)
	})
}

func TestPersonDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	people := NewGormPersonRepository(db)
	bonds := NewGormBondRepository(db)
	invoices := NewGormInvoiceRepository(db)
	receipts := NewGormReceiptRepository(db)
	courtDates := NewGormCourtDateRepository(db)
	checkIns := NewGormCheckInRepository(db)
	indemnitors := NewGormIndemnitorRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")
	bystander := seedPerson(t, db, tenantID, "Lee", "Okafor", "", "")

	bond, err := billing.NewBond(tenantID, person.ID, decimal.NewFromInt(10000), nil, "FTA", "PWR-1")
	require.NoError(t, err)
	require.NoError(t, bonds.Save(ctx, bond))

	inv, err := billing.NewInvoice(tenantID, person.ID, bond.InvoiceNumber(), day(2026, 8, 1), nil, "", bond.Amount)
	require.NoError(t, err)
	require.NoError(t, invoices.Save(ctx, inv))

	rc, err := billing.NewReceipt(tenantID, inv.ID, person.ID, decimal.NewFromInt(500),
		day(2026, 8, 2), billing.PaymentMethodCash, "")
	require.NoError(t, err)
	require.NoError(t, receipts.Save(ctx, rc))

	cd, err := casefile.NewCourtDate(tenantID, person.ID, day(2026, 9, 15), "09:00", "Dept 12", "", "")
	require.NoError(t, err)
	require.NoError(t, courtDates.Save(ctx, cd))

	ci, err := casefile.NewCheckIn(tenantID, person.ID, casefile.CheckInMethodPhone, "")
	require.NoError(t, err)
	require.NoError(t, checkIns.Save(ctx, ci))

	ind, err := casefile.NewIndemnitor(tenantID, person.ID, "Rosa Reyes", "mother", "", "", "")
	require.NoError(t, err)
	require.NoError(t, indemnitors.Save(ctx, ind))

	otherBond, err := billing.NewBond(tenantID, bystander.ID, decimal.NewFromInt(200), nil, "", "PWR-2")
	require.NoError(t, err)
	require.NoError(t, bonds.Save(ctx, otherBond))

	require.NoError(t, people.DeleteForTenant(ctx, tenantID, person.ID))

	_, err = people.FindByIDForTenant(ctx, tenantID, person.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = bonds.FindByIDForTenant(ctx, tenantID, bond.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = invoices.FindByIDForTenant(ctx, tenantID, inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = receipts.FindByIDForTenant(ctx, tenantID, rc.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = courtDates.FindByIDForTenant(ctx, tenantID, cd.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = checkIns.FindByIDForTenant(ctx, tenantID, ci.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = indemnitors.FindByIDForTenant(ctx, tenantID, ind.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// The other person's records survive.
	_, err = people.FindByIDForTenant(ctx, tenantID, bystander.ID)
	assert.NoError(t, err)
	_, err = bonds.FindByIDForTenant(ctx, tenantID, otherBond.ID)
	assert.NoError(t, err)

	t.Run("deleting an unknown person reports not found", func(t *testing.T) {
		err := people.DeleteForTenant(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCourtDateFindMostRecent(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewGormCourtDateRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")

	seed := func(t *testing.T, date time.Time, timeOfDay string) *casefile.CourtDate {
		t.Helper()
		cd, err := casefile.NewCourtDate(tenantID, person.ID, date, timeOfDay, "Dept 12", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, cd))
		return cd
	}

	t.Run("no court dates reports not found", func(t *testing.T) {
		_, err := repo.FindMostRecent(ctx, tenantID, person.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	seed(t, day(2026, 9, 1), "14:00")
	latest := seed(t, day(2026, 9, 20), "")
	seed(t, day(2026, 9, 10), "09:00")

	t.Run("later date wins regardless of time", func(t *testing.T) {
		got, err := repo.FindMostRecent(ctx, tenantID, person.ID)
		require.NoError(t, err)
		assert.Equal(t, latest.ID, got.ID)
	})

	t.Run("time of day breaks same-day ties", func(t *testing.T) {
		afternoon := seed(t, day(2026, 9, 20), "15:30")

		got, err := repo.FindMostRecent(ctx, tenantID, person.ID)
		require.NoError(t, err)
		assert.Equal(t, afternoon.ID, got.ID)
	})

	t.Run("scoped to the person", func(t *testing.T) {
		_, err := repo.FindMostRecent(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCheckInFindLatest(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewGormCheckInRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")

	seed := func(t *testing.T, createdAt time.Time) *casefile.CheckIn {
		t.Helper()
		ci, err := casefile.NewCheckIn(tenantID, person.ID, casefile.CheckInMethodPhone, "")
		require.NoError(t, err)
		ci.CreatedAt = createdAt
		ci.UpdatedAt = createdAt
		require.NoError(t, repo.Save(ctx, ci))
		return ci
	}

	seed(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))
	latest := seed(t, time.Date(2026, 8, 27, 16, 30, 0, 0, time.UTC))
	seed(t, time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC))

	got, err := repo.FindLatest(ctx, tenantID, person.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)

	t.Run("wrong tenant reports not found", func(t *testing.T) {
		_, err := repo.FindLatest(ctx, uuid.New(), person.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestChildRepoTenantScoping(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewGormBondRepository(db)

	tenantID := uuid.New()
	person := seedPerson(t, db, tenantID, "Dana", "Reyes", "", "")

	bond, err := billing.NewBond(tenantID, person.ID, decimal.NewFromInt(1000), nil, "", "PWR-9")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, bond))

	t.Run("find under another tenant is not found", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(ctx, uuid.New(), bond.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete under another tenant is not found and leaves the row", func(t *testing.T) {
		err := repo.DeleteForTenant(ctx, uuid.New(), bond.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByIDForTenant(ctx, tenantID, bond.ID)
		assert.NoError(t, err)
	})

	t.Run("update round trips through save", func(t *testing.T) {
		require.NoError(t, bond.Update(decimal.NewFromInt(2500), nil, "FTA", "PWR-9", billing.BondStatusDischarged))
		require.NoError(t, repo.Save(ctx, bond))

		got, err := repo.FindByIDForTenant(ctx, tenantID, bond.ID)
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(2500)))
		assert.Equal(t, billing.BondStatusDischarged, got.Status)
	})
}
