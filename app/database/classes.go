package database

import (
	"database/sql"

	"summit-schools/app/models"
)

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (grade, section, class_teacher_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, class.Grade, class.Section, class.ClassTeacherID).Scan(
		&class.ID, &class.CreatedAt, &class.UpdatedAt,
	)
}

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.grade, c.section, c.class_teacher_id,
			  c.created_at, c.updated_at,
			  COALESCE(t.name, '') AS teacher_name,
			  (SELECT COUNT(*) FROM students s WHERE s.class_id = c.id) AS student_count
			  FROM classes c
			  LEFT JOIN teachers t ON c.class_teacher_id = t.id
			  ORDER BY c.grade, c.section`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Grade, &class.Section, &class.ClassTeacherID,
			&class.CreatedAt, &class.UpdatedAt, &class.TeacherName, &class.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT c.id, c.grade, c.section, c.class_teacher_id,
			  c.created_at, c.updated_at,
			  COALESCE(t.name, '') AS teacher_name,
			  (SELECT COUNT(*) FROM students s WHERE s.class_id = c.id) AS student_count
			  FROM classes c
			  LEFT JOIN teachers t ON c.class_teacher_id = t.id
			  WHERE c.id = $1`
	err := db.QueryRow(query, id).Scan(
		&class.ID, &class.Grade, &class.Section, &class.ClassTeacherID,
		&class.CreatedAt, &class.UpdatedAt, &class.TeacherName, &class.StudentCount,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

func UpdateClass(db *sql.DB, class *models.Class) error {
	result, err := db.Exec(
		`UPDATE classes SET grade = $1, section = $2, class_teacher_id = $3, updated_at = now()
		 WHERE id = $4`,
		class.Grade, class.Section, class.ClassTeacherID, class.ID,
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

// DeleteClass removes the class and unassigns its students. Students are not
// deleted; their class reference is cleared.
func DeleteClass(db *sql.DB, id string) error {
	if _, err := db.Exec(`UPDATE students SET class_id = NULL WHERE class_id = $1`, id); err != nil {
		return err
	}
	result, err := db.Exec(`DELETE FROM classes WHERE id = $1`, id)
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

func ClassExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
