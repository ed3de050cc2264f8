package database

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summit-schools/app/models"
)

// Marking the same (student, subject, date) twice must update the existing
// row, not insert a second one. The statement carries the conflict clause
// and the re-mark comes back with the original id.
func TestUpsertAttendanceUpdatesInPlace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	upsert := `INSERT INTO attendance .*ON CONFLICT \(student_id, subject_id, date\) DO UPDATE SET status = EXCLUDED\.status`
	created := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(upsert).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("att-1", created, created))
	mock.ExpectQuery(upsert).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("att-1", created, created.Add(time.Hour)))

	record := &models.Attendance{
		StudentID: "student-1",
		ClassID:   "class-1",
		SubjectID: "subject-1",
		TeacherID: "teacher-1",
		Date:      created,
		Status:    models.Absent,
	}
	require.NoError(t, UpsertAttendance(db, record))
	assert.Equal(t, "att-1", record.ID)

	record.Status = models.Present
	record.Remarks = "arrived after roll call"
	require.NoError(t, UpsertAttendance(db, record))
	assert.Equal(t, "att-1", record.ID)
	assert.True(t, record.UpdatedAt.After(record.CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}
