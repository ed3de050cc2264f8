package database

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summit-schools/app/models"
)

func feeForUpdate() *models.Fee {
	return &models.Fee{
		ID:          "fee-1",
		StudentID:   "student-1",
		Description: "Term fee",
		Amount:      100,
		AmountPaid:  100,
		Balance:     0,
		Status:      models.FeePaid,
		DueDate:     time.Date(2026, time.March, 28, 0, 0, 0, 0, time.UTC),
	}
}

// A same-month re-run hits the (student_id, billing_period) conflict clause
// for every row and creates nothing.
func TestGenerateMonthlyFeesIdempotentRerun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	insert := `INSERT INTO fees .*ON CONFLICT \(student_id, billing_period\) WHERE billing_period IS NOT NULL DO NOTHING`
	now := time.Date(2026, time.March, 1, 6, 0, 0, 0, time.UTC)

	mock.ExpectExec(insert).
		WithArgs("Monthly School Fee - March 2026", sqlmock.AnyArg(), "2026-03").
		WillReturnResult(sqlmock.NewResult(0, 42))
	mock.ExpectExec(insert).
		WithArgs("Monthly School Fee - March 2026", sqlmock.AnyArg(), "2026-03").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := GenerateMonthlyFees(db, now)
	require.NoError(t, err)
	assert.Equal(t, 42, created)

	created, err = GenerateMonthlyFees(db, now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// UpdateFee persists the balance and status the caller computed; nothing in
// the statement re-derives them.
func TestUpdateFeePersistsBalanceAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fee := feeForUpdate()
	require.NoError(t, fee.SetAmount(150))

	mock.ExpectExec(`UPDATE fees SET description = \$1, amount = \$2, due_date = \$3, balance = \$4, status = \$5`).
		WithArgs(fee.Description, 150.0, fee.DueDate, 50.0, "Partial", fee.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, UpdateFee(db, fee))
	assert.NoError(t, mock.ExpectationsWereMet())
}
