package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escola-hub/escola-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestClassRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "stage", "year", "created_at"}).
		AddRow(1, "Turma A", "fundamental", "2", time.Now()).
		AddRow(2, "Turma B", "fundamental", "3", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, stage, year, created_at FROM classes ORDER BY id")).
		WillReturnRows(rows)

	classes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, classes, 2)
	assert.Equal(t, "Turma A", classes[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "stage", "year", "created_at"}).
		AddRow(7, "Turma C", "medio", "1", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, stage, year, created_at FROM classes WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	class, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), class.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryCreateFillsGeneratedColumns(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO classes").
		WithArgs("Turma A", "fundamental", "5").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	class := &models.Class{Name: "Turma A", Stage: "fundamental", Year: "5"}
	require.NoError(t, repo.Create(context.Background(), class))
	assert.Equal(t, int64(1), class.ID)
	assert.Equal(t, created, class.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryUpdateAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("UPDATE classes SET").
		WithArgs("Turma A", "fundamental", "6", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	class := &models.Class{ID: 3, Name: "Turma A", Stage: "fundamental", Year: "6"}
	require.NoError(t, repo.Update(context.Background(), class))

	mock.ExpectExec("DELETE FROM classes WHERE").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
