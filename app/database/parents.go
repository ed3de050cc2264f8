package database

import (
	"database/sql"
	"errors"

	"summit-schools/app/models"
)

// ErrAlreadyLinked is returned when a parent-student link already exists.
var ErrAlreadyLinked = errors.New("student already linked to this parent")

func CreateParentProfile(db *sql.DB, parent *models.Parent) error {
	query := `INSERT INTO parents (user_id, name, phone, address)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query, parent.UserID, parent.Name, parent.Phone, parent.Address,
	).Scan(&parent.ID, &parent.CreatedAt, &parent.UpdatedAt)
}

func GetAllParents(db *sql.DB) ([]*models.Parent, error) {
	query := `SELECT p.id, p.user_id, p.name, p.phone, p.address,
			  p.created_at, p.updated_at, u.email
			  FROM parents p
			  JOIN users u ON p.user_id = u.id
			  ORDER BY p.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []*models.Parent
	for rows.Next() {
		p := &models.Parent{}
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Address,
			&p.CreatedAt, &p.UpdatedAt, &p.Email,
		)
		if err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}
	return parents, rows.Err()
}

func GetParentByID(db *sql.DB, id string) (*models.Parent, error) {
	p := &models.Parent{}
	query := `SELECT p.id, p.user_id, p.name, p.phone, p.address,
			  p.created_at, p.updated_at, u.email
			  FROM parents p
			  JOIN users u ON p.user_id = u.id
			  WHERE p.id = $1`
	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Address,
		&p.CreatedAt, &p.UpdatedAt, &p.Email,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func GetParentByUserID(db *sql.DB, userID string) (*models.Parent, error) {
	p := &models.Parent{}
	query := `SELECT p.id, p.user_id, p.name, p.phone, p.address,
			  p.created_at, p.updated_at, u.email
			  FROM parents p
			  JOIN users u ON p.user_id = u.id
			  WHERE p.user_id = $1`
	err := db.QueryRow(query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Address,
		&p.CreatedAt, &p.UpdatedAt, &p.Email,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LinkStudentToParent creates the parent-student link. Re-linking an already
// linked pair fails with ErrAlreadyLinked.
func LinkStudentToParent(db *sql.DB, parentID, studentID string) error {
	_, err := db.Exec(
		`INSERT INTO parent_students (parent_id, student_id) VALUES ($1, $2)`,
		parentID, studentID,
	)
	if err != nil && IsUniqueViolation(err) {
		return ErrAlreadyLinked
	}
	return err
}

// GetChildrenByParentID returns the student profiles linked to a parent.
func GetChildrenByParentID(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` ` + studentJoins + `
			  JOIN parent_students ps ON ps.student_id = s.id
			  WHERE ps.parent_id = $1
			  ORDER BY s.name`

	rows, err := db.Query(query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, s)
	}
	return children, rows.Err()
}

func DeleteParentProfile(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM parents WHERE id = $1`, id)
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
