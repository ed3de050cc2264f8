package database

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summit-schools/app/models"
)

// A duplicate (grade, section) insert surfaces as a unique violation the
// handlers map to 400.
func TestCreateClassDuplicateGradeSection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO classes`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "classes_grade_section_key"})

	err = CreateClass(db, &models.Class{Grade: "7", Section: "A"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
