package database

import (
	"database/sql"

	"summit-schools/app/models"
)

func CreateTeacherProfile(db *sql.DB, teacher *models.Teacher) error {
	query := `INSERT INTO teachers (user_id, name, phone, qualification, specialty)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query,
		teacher.UserID, teacher.Name, teacher.Phone, teacher.Qualification, teacher.Specialty,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
}

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT t.id, t.user_id, t.name, t.phone, t.qualification, t.specialty,
			  t.created_at, t.updated_at, u.email
			  FROM teachers t
			  JOIN users u ON t.user_id = u.id
			  ORDER BY t.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t := &models.Teacher{}
		err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Phone, &t.Qualification, &t.Specialty,
			&t.CreatedAt, &t.UpdatedAt, &t.Email,
		)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT t.id, t.user_id, t.name, t.phone, t.qualification, t.specialty,
			  t.created_at, t.updated_at, u.email
			  FROM teachers t
			  JOIN users u ON t.user_id = u.id
			  WHERE t.id = $1`
	err := db.QueryRow(query, id).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Phone, &t.Qualification, &t.Specialty,
		&t.CreatedAt, &t.UpdatedAt, &t.Email,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func GetTeacherByUserID(db *sql.DB, userID string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT t.id, t.user_id, t.name, t.phone, t.qualification, t.specialty,
			  t.created_at, t.updated_at, u.email
			  FROM teachers t
			  JOIN users u ON t.user_id = u.id
			  WHERE t.user_id = $1`
	err := db.QueryRow(query, userID).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Phone, &t.Qualification, &t.Specialty,
		&t.CreatedAt, &t.UpdatedAt, &t.Email,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func UpdateTeacherProfile(db *sql.DB, teacher *models.Teacher) error {
	result, err := db.Exec(
		`UPDATE teachers SET name = $1, phone = $2, qualification = $3, specialty = $4, updated_at = now()
		 WHERE id = $5`,
		teacher.Name, teacher.Phone, teacher.Qualification, teacher.Specialty, teacher.ID,
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

// DeleteTeacherProfile removes the profile only. The backing user account is
// left in place.
func DeleteTeacherProfile(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
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

func TeacherExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM teachers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
