package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return &Database{DB: db}, mock
}

// Two requests saving the same bond can both miss the lookup and race
// to insert. The loser's insert hits the unique index and must come
// back with the winner's row, not the constraint error. That interleaving
// cannot be forced on a live database, so the driver is mocked instead.
func TestInvoiceGetOrCreateLosesInsertRace(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewGormInvoiceRepository(db)

	tenantID := uuid.New()
	personID := uuid.New()
	winnerID := uuid.New()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	inv, err := billing.NewInvoice(tenantID, personID, "BOND-abc123", now, nil,
		"Bail bond PWR-100", decimal.NewFromInt(5000))
	require.NoError(t, err)

	// Lookup misses, so the repository tries to insert.
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// The concurrent winner got there first.
	mock.ExpectExec(`INSERT INTO "invoices"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_invoice_tenant_number"`))

	// The re-fetch finds the winner's row.
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "version",
			"tenant_id", "person_id", "number", "date", "due_date",
			"description", "amount", "status",
		}).AddRow(
			winnerID.String(), now, now, 1,
			tenantID.String(), personID.String(), "BOND-abc123", now, nil,
			"Bail bond PWR-100", "5000", string(billing.InvoiceStatusUnpaid),
		))

	got, created, err := repo.GetOrCreate(context.Background(), inv)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winnerID, got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(5000)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the insert fails and the re-fetch still finds nothing, the
// original error surfaces. That covers genuine insert failures that
// have nothing to do with the unique index.
func TestInvoiceGetOrCreateSurfacesInsertError(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewGormInvoiceRepository(db)

	inv, err := billing.NewInvoice(uuid.New(), uuid.New(), "BOND-xyz", time.Now(), nil,
		"", decimal.NewFromInt(100))
	require.NoError(t, err)

	insertErr := errors.New("connection refused")

	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO "invoices"`).
		WillReturnError(insertErr)
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err = repo.GetOrCreate(context.Background(), inv)
	assert.ErrorIs(t, err, insertErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
