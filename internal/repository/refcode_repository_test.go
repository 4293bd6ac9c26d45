package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestRefCodeRepositoryFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "kind", "code", "name"}).
		AddRow(id.String(), "ntee", "A20", "Arts Education")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `ref_codes` WHERE id = ? AND `ref_codes`.`deleted_at` IS NULL ORDER BY `ref_codes`.`id` LIMIT ?")).
		WithArgs(id, 1).
		WillReturnRows(rows)

	code, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "ntee", code.Kind)
	assert.Equal(t, "A20", code.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefCodeRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT \\* FROM `ref_codes`").
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "code", "name"}))

	code, err := repo.FindByID(context.Background(), id)
	assert.Nil(t, code)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRefCodeRepositoryListFiltersByKind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `ref_codes` WHERE kind = ? AND `ref_codes`.`deleted_at` IS NULL")).
		WithArgs("status").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `ref_codes` WHERE kind = ? AND `ref_codes`.`deleted_at` IS NULL ORDER BY code LIMIT ?")).
		WithArgs("status", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "code", "name"}).
			AddRow(uuid.New().String(), "status", "01", "Unconditional Exemption").
			AddRow(uuid.New().String(), "status", "02", "Conditional Exemption"))

	codes, total, err := repo.List(context.Background(), "status", "", 0, 25)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, codes, 2)
	assert.Equal(t, "01", codes[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefCodeRepositoryListSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `ref_codes` WHERE kind = ? AND (code LIKE ? OR name LIKE ?) AND `ref_codes`.`deleted_at` IS NULL")).
		WithArgs("ntee", "%art%", "%art%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `ref_codes`").
		WithArgs("ntee", "%art%", "%art%", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "code", "name"}).
			AddRow(uuid.New().String(), "ntee", "A20", "Arts Education"))

	codes, total, err := repo.List(context.Background(), "ntee", "art", 0, 25)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, codes, 1)
}

func TestRefCodeRepositoryDeleteIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	// Soft delete stamps deleted_at rather than removing the row.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ref_codes` SET `deleted_at`=?")).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefCodeRepositoryFindBmfByEIN(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)

	rows := sqlmock.NewRows([]string{"id", "ein", "name", "state"}).
		AddRow(uuid.New().String(), "123456789", "Helping Hands", "NY")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `bmf_records` WHERE ein = ? AND `bmf_records`.`deleted_at` IS NULL ORDER BY `bmf_records`.`id` LIMIT ?")).
		WithArgs("123456789", 1).
		WillReturnRows(rows)

	record, err := repo.FindBmfByEIN(context.Background(), "123456789")
	assert.NoError(t, err)
	assert.Equal(t, "Helping Hands", record.Name)
	assert.Equal(t, "NY", record.State)
}

func TestRefCodeRepositoryListBmfByState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefCodeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `bmf_records` WHERE state = ? AND `bmf_records`.`deleted_at` IS NULL")).
		WithArgs("CA").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `bmf_records`").
		WithArgs("CA", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ein", "name", "state"}).
			AddRow(uuid.New().String(), "987654321", "Bay Relief", "CA"))

	records, total, err := repo.ListBmf(context.Background(), "", "CA", 0, 25)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, records, 1)
	assert.Equal(t, "Bay Relief", records[0].Name)
}
