package database

import (
	"database/sql"

	"summit-schools/app/models"
)

const examColumns = `e.id, e.name, e.exam_type, e.class_id, e.subject_id, e.teacher_id,
	e.exam_date, e.duration, e.total_marks, e.room, e.status, e.rejection_reason,
	e.approved_by, e.approved_at, e.paper_url, e.answer_key_url,
	e.created_at, e.updated_at,
	COALESCE(c.grade, ''), COALESCE(c.section, ''),
	COALESCE(sb.name, ''), COALESCE(t.name, '')`

const examJoins = `FROM exams e
	LEFT JOIN classes c ON e.class_id = c.id
	LEFT JOIN subjects sb ON e.subject_id = sb.id
	LEFT JOIN teachers t ON e.teacher_id = t.id`

func scanExam(row interface{ Scan(...interface{}) error }) (*models.Exam, error) {
	e := &models.Exam{}
	err := row.Scan(
		&e.ID, &e.Name, &e.ExamType, &e.ClassID, &e.SubjectID, &e.TeacherID,
		&e.ExamDate, &e.Duration, &e.TotalMarks, &e.Room, &e.Status, &e.RejectionReason,
		&e.ApprovedBy, &e.ApprovedAt, &e.PaperURL, &e.AnswerKeyURL,
		&e.CreatedAt, &e.UpdatedAt,
		&e.ClassGrade, &e.ClassSection, &e.SubjectName, &e.TeacherName,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func scanExamRows(rows *sql.Rows) ([]*models.Exam, error) {
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// CreateExam inserts the exam in pending state regardless of creator.
func CreateExam(db *sql.DB, e *models.Exam) error {
	query := `INSERT INTO exams
			  (name, exam_type, class_id, subject_id, teacher_id, exam_date, duration, total_marks, room, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
			  RETURNING id, status, created_at, updated_at`
	return db.QueryRow(
		query,
		e.Name, e.ExamType, e.ClassID, e.SubjectID, e.TeacherID,
		e.ExamDate, e.Duration, e.TotalMarks, e.Room,
	).Scan(&e.ID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

func GetExamByID(db *sql.DB, id string) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` ` + examJoins + ` WHERE e.id = $1`
	return scanExam(db.QueryRow(query, id))
}

// GetExamsByStatus lists exams in one state, optionally limited to a class.
func GetExamsByStatus(db *sql.DB, status models.ExamStatus, classID string) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` ` + examJoins + ` WHERE e.status = $1`
	args := []interface{}{status}
	if classID != "" {
		query += ` AND e.class_id = $2`
		args = append(args, classID)
	}
	query += ` ORDER BY e.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanExamRows(rows)
}

func GetAllExams(db *sql.DB) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` ` + examJoins + ` ORDER BY e.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanExamRows(rows)
}

// SaveExamStatus persists the outcome of an approval-state transition.
func SaveExamStatus(db *sql.DB, e *models.Exam) error {
	_, err := db.Exec(
		`UPDATE exams SET status = $1, rejection_reason = $2, approved_by = $3,
		 approved_at = $4, updated_at = now()
		 WHERE id = $5`,
		e.Status, e.RejectionReason, e.ApprovedBy, e.ApprovedAt, e.ID,
	)
	return err
}

func UpdateExam(db *sql.DB, e *models.Exam) error {
	result, err := db.Exec(
		`UPDATE exams SET name = $1, exam_type = $2, exam_date = $3, duration = $4,
		 total_marks = $5, room = $6, updated_at = now()
		 WHERE id = $7`,
		e.Name, e.ExamType, e.ExamDate, e.Duration, e.TotalMarks, e.Room, e.ID,
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

func SetExamPaperURL(db *sql.DB, id, paperURL string) error {
	_, err := db.Exec(`UPDATE exams SET paper_url = $1, updated_at = now() WHERE id = $2`, paperURL, id)
	return err
}

func SetExamAnswerKeyURL(db *sql.DB, id, answerKeyURL string) error {
	_, err := db.Exec(`UPDATE exams SET answer_key_url = $1, updated_at = now() WHERE id = $2`, answerKeyURL, id)
	return err
}

func DeleteExam(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM exams WHERE id = $1`, id)
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

func ExamExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM exams WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
