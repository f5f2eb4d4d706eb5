package analytics_test

import (
	"context"
	"testing"
	"time"

	"barangay-portal/internal/analytics"
	"barangay-portal/internal/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (analytics.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return analytics.NewRepository(db), mock
}

func TestRepository_DailyRequestCounts(t *testing.T) {
	repo, mock := newRepo(t)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DATE\(created_at\) AS day, COUNT\(\*\) AS total FROM "document_requests" WHERE created_at >= \$1.*GROUP BY DATE\(created_at\)`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "total"}).AddRow(day, 4))

	rows, err := repo.DailyRequestCounts(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(4), rows[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DailyRevenue(t *testing.T) {
	repo, mock := newRepo(t)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DATE\(paid_at\) AS day, COALESCE\(SUM\(amount\), 0\) AS total FROM "document_requests" WHERE is_paid = \$1 AND paid_at >= \$2.*GROUP BY DATE\(paid_at\)`).
		WithArgs(true, since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "total"}))

	rows, err := repo.DailyRevenue(context.Background(), since, scope.Paid())

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
