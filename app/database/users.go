package database

import (
	"database/sql"

	"github.com/lib/pq"

	"summit-schools/app/models"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1`
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user with an already-hashed password and fills in the
// generated id.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, role, is_active)
			  VALUES ($1, $2, $3, true)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, user.Email, user.Password, user.Role).Scan(
		&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(
		`UPDATE users SET password = $1, updated_at = now() WHERE id = $2`,
		hashedPassword, userID,
	)
	return err
}

func SetUserActive(db *sql.DB, userID string, active bool) error {
	_, err := db.Exec(
		`UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2`,
		active, userID,
	)
	return err
}
