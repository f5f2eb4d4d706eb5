package resident_test

import (
	"context"
	"regexp"
	"testing"

	"barangay-portal/internal/resident"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_DeleteSkillIsOwnerScoped(t *testing.T) {
	db, mock := newGorm(t)
	repo := resident.NewRepository(db)
	owner, id := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "skills" WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.DeleteSkill(context.Background(), owner, id)

	assert.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSkills(t *testing.T) {
	db, mock := newGorm(t)
	repo := resident.NewRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "skills" WHERE user_id = $1 ORDER BY name ASC`)).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.NewString(), owner.String(), "Masonry"))

	items, err := repo.ListSkills(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Masonry", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
