package database

import (
	"database/sql"

	"summit-schools/app/models"
)

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, code, class_id, teacher_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query, subject.Name, subject.Code, subject.ClassID, subject.TeacherID,
	).Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
}

func GetAllSubjects(db *sql.DB, classID string) ([]*models.Subject, error) {
	query := `SELECT sb.id, sb.name, sb.code, sb.class_id, sb.teacher_id,
			  sb.created_at, sb.updated_at, COALESCE(t.name, '') AS teacher_name
			  FROM subjects sb
			  LEFT JOIN teachers t ON sb.teacher_id = t.id`
	var args []interface{}
	if classID != "" {
		query += ` WHERE sb.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY sb.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		sb := &models.Subject{}
		err := rows.Scan(
			&sb.ID, &sb.Name, &sb.Code, &sb.ClassID, &sb.TeacherID,
			&sb.CreatedAt, &sb.UpdatedAt, &sb.TeacherName,
		)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, sb)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	sb := &models.Subject{}
	query := `SELECT sb.id, sb.name, sb.code, sb.class_id, sb.teacher_id,
			  sb.created_at, sb.updated_at, COALESCE(t.name, '') AS teacher_name
			  FROM subjects sb
			  LEFT JOIN teachers t ON sb.teacher_id = t.id
			  WHERE sb.id = $1`
	err := db.QueryRow(query, id).Scan(
		&sb.ID, &sb.Name, &sb.Code, &sb.ClassID, &sb.TeacherID,
		&sb.CreatedAt, &sb.UpdatedAt, &sb.TeacherName,
	)
	if err != nil {
		return nil, err
	}
	return sb, nil
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	result, err := db.Exec(
		`UPDATE subjects SET name = $1, code = $2, class_id = $3, teacher_id = $4, updated_at = now()
		 WHERE id = $5`,
		subject.Name, subject.Code, subject.ClassID, subject.TeacherID, subject.ID,
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

func DeleteSubject(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
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

func SubjectExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM subjects WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
