package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escola-hub/escola-api/internal/models"
)

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "guardian_email", "guardian_phone", "class_id", "created_at"}).
		AddRow(1, "João", "g@x.com", "119999", 1, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, guardian_email, guardian_phone, class_id, created_at FROM students ORDER BY id")).
		WillReturnRows(rows)

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "João", students[0].Name)
	assert.Equal(t, int64(1), students[0].ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateFillsGeneratedColumns(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO students").
		WithArgs("João", "g@x.com", "119999", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, created))

	student := &models.Student{Name: "João", GuardianEmail: "g@x.com", GuardianPhone: "119999", ClassID: 1}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(4), student.ID)
	assert.Equal(t, created, student.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET").
		WithArgs("Maria", "m@x.com", "117777", int64(2), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := &models.Student{ID: 4, Name: "Maria", GuardianEmail: "m@x.com", GuardianPhone: "117777", ClassID: 2}
	require.NoError(t, repo.Update(context.Background(), student))

	mock.ExpectExec("DELETE FROM students WHERE").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
