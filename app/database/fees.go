package database

import (
	"database/sql"
	"fmt"
	"time"

	"summit-schools/app/models"
)

const feeColumns = `f.id, f.student_id, f.description, f.amount, f.due_date,
	f.amount_paid, f.balance, f.status, f.billing_period, f.payment_date,
	f.payment_method, f.created_at, f.updated_at,
	COALESCE(s.name, ''), COALESCE(s.roll_number, '')`

const feeJoins = `FROM fees f
	LEFT JOIN students s ON f.student_id = s.id`

func scanFee(row interface{ Scan(...interface{}) error }) (*models.Fee, error) {
	f := &models.Fee{}
	err := row.Scan(
		&f.ID, &f.StudentID, &f.Description, &f.Amount, &f.DueDate,
		&f.AmountPaid, &f.Balance, &f.Status, &f.BillingPeriod, &f.PaymentDate,
		&f.PaymentMethod, &f.CreatedAt, &f.UpdatedAt,
		&f.StudentName, &f.RollNumber,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFee inserts a fresh invoice: nothing paid, balance equals amount.
func CreateFee(db *sql.DB, f *models.Fee) error {
	query := `INSERT INTO fees (student_id, description, amount, due_date, amount_paid, balance, status)
			  VALUES ($1, $2, $3, $4, 0, $3, 'Unpaid')
			  RETURNING id, amount_paid, balance, status, created_at, updated_at`
	return db.QueryRow(
		query, f.StudentID, f.Description, f.Amount, f.DueDate,
	).Scan(&f.ID, &f.AmountPaid, &f.Balance, &f.Status, &f.CreatedAt, &f.UpdatedAt)
}

func GetAllFees(db *sql.DB) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` ` + feeJoins + ` ORDER BY f.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func GetFeeByID(db *sql.DB, id string) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` ` + feeJoins + ` WHERE f.id = $1`
	f, err := scanFee(db.QueryRow(query, id))
	if err != nil {
		return nil, err
	}

	f.PaymentHistory, err = getFeePayments(db, id)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func GetFeesByStudent(db *sql.DB, studentID string) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` ` + feeJoins + `
			  WHERE f.student_id = $1
			  ORDER BY f.created_at DESC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func getFeePayments(db *sql.DB, feeID string) ([]*models.FeePayment, error) {
	rows, err := db.Query(
		`SELECT id, fee_id, amount, method, note, paid_at
		 FROM fee_payments WHERE fee_id = $1 ORDER BY paid_at`,
		feeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		p := &models.FeePayment{}
		if err := rows.Scan(&p.ID, &p.FeeID, &p.Amount, &p.Method, &p.Note, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SavePayment persists an applied payment and the fee's updated totals in
// one transaction.
func SavePayment(db *sql.DB, f *models.Fee, p *models.FeePayment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO fee_payments (fee_id, amount, method, note, paid_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.FeeID, p.Amount, p.Method, p.Note, p.PaidAt,
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`UPDATE fees SET amount_paid = $1, balance = $2, status = $3,
		 payment_date = $4, payment_method = $5, updated_at = now()
		 WHERE id = $6`,
		f.AmountPaid, f.Balance, f.Status, f.PaymentDate, f.PaymentMethod, f.ID,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateFee persists an edited invoice. Balance and status are taken from
// the struct; callers reprice through Fee.SetAmount so both stay consistent
// with amount_paid.
func UpdateFee(db *sql.DB, f *models.Fee) error {
	result, err := db.Exec(
		`UPDATE fees SET description = $1, amount = $2, due_date = $3,
		 balance = $4, status = $5, updated_at = now()
		 WHERE id = $6`,
		f.Description, f.Amount, f.DueDate, f.Balance, f.Status, f.ID,
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

func DeleteFee(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM fees WHERE id = $1`, id)
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

// GenerateMonthlyFees creates one invoice, due on the 28th, for every student
// with a non-zero monthly fee who has not yet been billed for the current
// month. The (student, billing_period) unique index makes re-runs within the
// same month no-ops.
func GenerateMonthlyFees(db *sql.DB, now time.Time) (int, error) {
	period := now.Format("2006-01")
	description := fmt.Sprintf("Monthly School Fee - %s %d", now.Month(), now.Year())
	dueDate := time.Date(now.Year(), now.Month(), 28, 0, 0, 0, 0, now.Location())

	result, err := db.Exec(
		`INSERT INTO fees (student_id, description, amount, due_date, amount_paid, balance, status, billing_period)
		 SELECT s.id, $1, s.monthly_fee, $2, 0, s.monthly_fee, 'Unpaid', $3
		 FROM students s
		 WHERE s.monthly_fee > 0
		 ON CONFLICT (student_id, billing_period) WHERE billing_period IS NOT NULL DO NOTHING`,
		description, dueDate, period,
	)
	if err != nil {
		return 0, err
	}
	created, err := result.RowsAffected()
	return int(created), err
}
