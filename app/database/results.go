package database

import (
	"database/sql"

	"summit-schools/app/models"
)

const resultColumns = `r.id, r.exam_id, r.student_id, r.subject_id,
	r.marks_obtained, r.total_marks, r.grade, r.created_at, r.updated_at,
	COALESCE(e.name, ''), COALESCE(sb.name, ''), COALESCE(sb.code, ''),
	COALESCE(s.name, ''), COALESCE(s.roll_number, '')`

const resultJoins = `FROM results r
	LEFT JOIN exams e ON r.exam_id = e.id
	LEFT JOIN subjects sb ON r.subject_id = sb.id
	LEFT JOIN students s ON r.student_id = s.id`

func scanResultRows(rows *sql.Rows) ([]*models.Result, error) {
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		r := &models.Result{}
		err := rows.Scan(
			&r.ID, &r.ExamID, &r.StudentID, &r.SubjectID,
			&r.MarksObtained, &r.TotalMarks, &r.Grade, &r.CreatedAt, &r.UpdatedAt,
			&r.ExamName, &r.SubjectName, &r.SubjectCode,
			&r.StudentName, &r.RollNumber,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// UpsertResult writes the marks and server-computed grade for one
// (exam, student, subject) triple; a resubmission overwrites in place.
func UpsertResult(db *sql.DB, r *models.Result) error {
	query := `INSERT INTO results (exam_id, student_id, subject_id, marks_obtained, total_marks, grade)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (exam_id, student_id, subject_id)
			  DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained,
						    total_marks = EXCLUDED.total_marks,
						    grade = EXCLUDED.grade,
						    updated_at = now()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query,
		r.ExamID, r.StudentID, r.SubjectID, r.MarksObtained, r.TotalMarks, r.Grade,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func GetAllResults(db *sql.DB) ([]*models.Result, error) {
	query := `SELECT ` + resultColumns + ` ` + resultJoins + ` ORDER BY r.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanResultRows(rows)
}

func GetResultsByStudent(db *sql.DB, studentID string) ([]*models.Result, error) {
	query := `SELECT ` + resultColumns + ` ` + resultJoins + `
			  WHERE r.student_id = $1
			  ORDER BY r.created_at DESC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	return scanResultRows(rows)
}

func GetResultsByExam(db *sql.DB, examID string) ([]*models.Result, error) {
	query := `SELECT ` + resultColumns + ` ` + resultJoins + `
			  WHERE r.exam_id = $1
			  ORDER BY s.roll_number`
	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, err
	}
	return scanResultRows(rows)
}

// UpdateResultMarks rewrites marks and the recomputed grade for one result.
func UpdateResultMarks(db *sql.DB, id string, marksObtained, totalMarks float64, grade string) error {
	result, err := db.Exec(
		`UPDATE results SET marks_obtained = $1, total_marks = $2, grade = $3, updated_at = now()
		 WHERE id = $4`,
		marksObtained, totalMarks, grade, id,
	)
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

func DeleteResult(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM results WHERE id = $1`, id)
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
