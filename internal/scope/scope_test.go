package scope_test

import (
	"regexp"
	"testing"
	"time"

	"barangay-portal/internal/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (row) TableName() string { return "document_requests" }

func newGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestOwnedBy(t *testing.T) {
	db, mock := newGorm(t)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "document_requests" WHERE user_id = $1`)).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	var rows []row
	err := db.Scopes(scope.OwnedBy("user_id", owner)).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInBarangayAndSince(t *testing.T) {
	db, mock := newGorm(t)
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "document_requests" WHERE user_id IN (SELECT id FROM users WHERE barangay = $1 AND deleted_at IS NULL) AND created_at >= $2`,
	)).
		WithArgs("Centro", since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	var rows []row
	err := db.Scopes(
		scope.InBarangay("user_id", "Centro"),
		scope.Since("created_at", since),
	).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNullOrEqual(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		db, mock := newGorm(t)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM "document_requests" WHERE (target_sitio IS NULL OR target_sitio = $1)`,
		)).
			WithArgs("Purok 1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

		var rows []row
		err := db.Scopes(scope.NullOrEqual("target_sitio", "Purok 1")).Find(&rows).Error

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty value matches unset only", func(t *testing.T) {
		db, mock := newGorm(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "document_requests" WHERE target_sitio IS NULL`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

		var rows []row
		err := db.Scopes(scope.NullOrEqual("target_sitio", "")).Find(&rows).Error

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
