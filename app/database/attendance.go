package database

import (
	"database/sql"
	"time"

	"summit-schools/app/models"
)

const attendanceColumns = `a.id, a.student_id, a.class_id, a.subject_id, a.teacher_id,
	a.date, a.status, a.remarks, a.created_at, a.updated_at,
	COALESCE(s.name, ''), COALESCE(sb.name, ''), COALESCE(sb.code, ''), COALESCE(t.name, '')`

const attendanceJoins = `FROM attendance a
	LEFT JOIN students s ON a.student_id = s.id
	LEFT JOIN subjects sb ON a.subject_id = sb.id
	LEFT JOIN teachers t ON a.teacher_id = t.id`

func scanAttendanceRows(rows *sql.Rows) ([]*models.Attendance, error) {
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.ClassID, &a.SubjectID, &a.TeacherID,
			&a.Date, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
			&a.StudentName, &a.SubjectName, &a.SubjectCode, &a.TeacherName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// UpsertAttendance inserts a record or, when one already exists for the same
// (student, subject, date), updates its status and remarks in place.
func UpsertAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, class_id, subject_id, teacher_id, date, status, remarks)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (student_id, subject_id, date)
			  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, updated_at = now()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query,
		a.StudentID, a.ClassID, a.SubjectID, a.TeacherID, a.Date, a.Status, a.Remarks,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func GetAllAttendance(db *sql.DB) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` ` + attendanceJoins + ` ORDER BY a.date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

// GetAttendanceByStudent returns a student's records, optionally limited to
// [startDate, endDate] (inclusive calendar days).
func GetAttendanceByStudent(db *sql.DB, studentID string, startDate, endDate *time.Time) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` ` + attendanceJoins + ` WHERE a.student_id = $1`
	args := []interface{}{studentID}
	if startDate != nil && endDate != nil {
		query += ` AND a.date BETWEEN $2 AND $3`
		args = append(args, *startDate, *endDate)
	}
	query += ` ORDER BY a.date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

// GetAttendanceByClass returns a class's records, optionally filtered to one
// calendar day and/or one subject.
func GetAttendanceByClass(db *sql.DB, classID string, date *time.Time, subjectID string) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` ` + attendanceJoins + ` WHERE a.class_id = $1`
	args := []interface{}{classID}
	if date != nil {
		args = append(args, *date)
		query += ` AND a.date = $2`
	}
	if subjectID != "" {
		args = append(args, subjectID)
		if date != nil {
			query += ` AND a.subject_id = $3`
		} else {
			query += ` AND a.subject_id = $2`
		}
	}
	query += ` ORDER BY a.date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

func UpdateAttendance(db *sql.DB, id string, status models.AttendanceStatus, remarks string) (*models.Attendance, error) {
	_, err := db.Exec(
		`UPDATE attendance SET status = $1, remarks = $2, updated_at = now() WHERE id = $3`,
		status, remarks, id,
	)
	if err != nil {
		return nil, err
	}

	a := &models.Attendance{}
	query := `SELECT ` + attendanceColumns + ` ` + attendanceJoins + ` WHERE a.id = $1`
	err = db.QueryRow(query, id).Scan(
		&a.ID, &a.StudentID, &a.ClassID, &a.SubjectID, &a.TeacherID,
		&a.Date, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
		&a.StudentName, &a.SubjectName, &a.SubjectCode, &a.TeacherName,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func DeleteAttendance(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
