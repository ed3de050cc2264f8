package database

import (
	"database/sql"

	"summit-schools/app/models"
)

const studentColumns = `s.id, s.user_id, s.name, s.gender, s.dob, s.roll_number,
	s.admission_number, s.class_id, s.phone, s.address, s.parent_name,
	s.parent_phone, s.monthly_fee, s.created_at, s.updated_at,
	u.email, COALESCE(c.grade, ''), COALESCE(c.section, '')`

const studentJoins = `FROM students s
	JOIN users u ON s.user_id = u.id
	LEFT JOIN classes c ON s.class_id = c.id`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var dob sql.NullTime
	var roll, admission sql.NullString
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Gender, &dob, &roll,
		&admission, &s.ClassID, &s.Phone, &s.Address, &s.ParentName,
		&s.ParentPhone, &s.MonthlyFee, &s.CreatedAt, &s.UpdatedAt,
		&s.Email, &s.ClassGrade, &s.ClassSection,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		s.DOB = dob.Time
	}
	s.RollNumber = roll.String
	s.AdmissionNumber = admission.String
	return s, nil
}

func CreateStudentProfile(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students
			  (user_id, name, gender, dob, roll_number, admission_number, class_id,
			   phone, address, parent_name, parent_phone, monthly_fee)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(
		query,
		student.UserID, student.Name, student.Gender, student.DOB,
		student.RollNumber, student.AdmissionNumber, student.ClassID,
		student.Phone, student.Address, student.ParentName, student.ParentPhone,
		student.MonthlyFee,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func GetAllStudents(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` ` + studentJoins
	var args []interface{}
	if classID != "" {
		query += ` WHERE s.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY s.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` ` + studentJoins + ` WHERE s.id = $1`
	return scanStudent(db.QueryRow(query, id))
}

func GetStudentByUserID(db *sql.DB, userID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` ` + studentJoins + ` WHERE s.user_id = $1`
	return scanStudent(db.QueryRow(query, userID))
}

func UpdateStudentProfile(db *sql.DB, student *models.Student) error {
	result, err := db.Exec(
		`UPDATE students SET name = $1, gender = $2, dob = $3,
		 roll_number = NULLIF($4, ''), admission_number = NULLIF($5, ''), class_id = $6,
		 phone = $7, address = $8, parent_name = $9, parent_phone = $10,
		 monthly_fee = $11, updated_at = now()
		 WHERE user_id = $12`,
		student.Name, student.Gender, student.DOB,
		student.RollNumber, student.AdmissionNumber, student.ClassID,
		student.Phone, student.Address, student.ParentName, student.ParentPhone,
		student.MonthlyFee, student.UserID,
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

// DeleteStudentProfile removes the profile only. The backing user account is
// left in place.
func DeleteStudentProfile(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
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

func StudentExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
