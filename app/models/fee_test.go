package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFee(amount float64) *Fee {
	return &Fee{
		ID:          "fee-1",
		StudentID:   "student-1",
		Description: "Term fee",
		Amount:      amount,
		Balance:     amount,
		Status:      FeeUnpaid,
	}
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	fee := newFee(100)

	p1, err := fee.ApplyPayment(30, "Cash", "")
	require.NoError(t, err)
	assert.Equal(t, 30.0, p1.Amount)
	assert.Equal(t, 30.0, fee.AmountPaid)
	assert.Equal(t, 70.0, fee.Balance)
	assert.Equal(t, FeePartial, fee.Status)

	p2, err := fee.ApplyPayment(70, "Bank", "final installment")
	require.NoError(t, err)
	assert.Equal(t, 70.0, p2.Amount)
	assert.Equal(t, 100.0, fee.AmountPaid)
	assert.Equal(t, 0.0, fee.Balance)
	assert.Equal(t, FeePaid, fee.Status)

	require.Len(t, fee.PaymentHistory, 2)
	assert.Equal(t, "Cash", fee.PaymentHistory[0].Method)
	assert.Equal(t, "Bank", fee.PaymentHistory[1].Method)
}

func TestApplyPaymentBalanceInvariant(t *testing.T) {
	fee := newFee(250)
	for _, amount := range []float64{50, 25, 100} {
		_, err := fee.ApplyPayment(amount, "", "")
		require.NoError(t, err)
		assert.Equal(t, fee.Amount-fee.AmountPaid, fee.Balance)
	}
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	fee := newFee(100)

	_, err := fee.ApplyPayment(101, "Cash", "")
	assert.ErrorIs(t, err, ErrOverpayment)

	_, err = fee.ApplyPayment(60, "Cash", "")
	require.NoError(t, err)

	// Remaining balance is 40; anything above that is refused.
	_, err = fee.ApplyPayment(41, "Cash", "")
	assert.ErrorIs(t, err, ErrOverpayment)
	assert.Equal(t, 60.0, fee.AmountPaid)
	assert.Equal(t, FeePartial, fee.Status)
	assert.Len(t, fee.PaymentHistory, 1)
}

func TestApplyPaymentRejectsInvalidAmount(t *testing.T) {
	fee := newFee(100)

	_, err := fee.ApplyPayment(0, "Cash", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = fee.ApplyPayment(-5, "Cash", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, FeeUnpaid, fee.Status)
	assert.Empty(t, fee.PaymentHistory)
}

func TestSetAmountRecomputesStatus(t *testing.T) {
	fee := newFee(100)
	_, err := fee.ApplyPayment(100, "Cash", "")
	require.NoError(t, err)
	require.Equal(t, FeePaid, fee.Status)

	// Repricing a settled invoice upward reopens it.
	require.NoError(t, fee.SetAmount(150))
	assert.Equal(t, 150.0, fee.Amount)
	assert.Equal(t, 50.0, fee.Balance)
	assert.Equal(t, FeePartial, fee.Status)
}

func TestSetAmountDownToPaid(t *testing.T) {
	fee := newFee(100)
	_, err := fee.ApplyPayment(60, "Cash", "")
	require.NoError(t, err)
	require.Equal(t, FeePartial, fee.Status)

	require.NoError(t, fee.SetAmount(60))
	assert.Equal(t, 0.0, fee.Balance)
	assert.Equal(t, FeePaid, fee.Status)
}

func TestSetAmountUnpaidFee(t *testing.T) {
	fee := newFee(100)

	require.NoError(t, fee.SetAmount(250))
	assert.Equal(t, 250.0, fee.Balance)
	assert.Equal(t, FeeUnpaid, fee.Status)
}

func TestSetAmountRejectsInvalid(t *testing.T) {
	fee := newFee(100)
	_, err := fee.ApplyPayment(60, "Cash", "")
	require.NoError(t, err)

	assert.ErrorIs(t, fee.SetAmount(0), ErrInvalidAmount)
	assert.ErrorIs(t, fee.SetAmount(-10), ErrInvalidAmount)
	assert.ErrorIs(t, fee.SetAmount(59), ErrAmountBelowPaid)

	assert.Equal(t, 100.0, fee.Amount)
	assert.Equal(t, 40.0, fee.Balance)
	assert.Equal(t, FeePartial, fee.Status)
}

func TestApplyPaymentDefaultsMethodToCash(t *testing.T) {
	fee := newFee(100)

	p, err := fee.ApplyPayment(100, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Cash", p.Method)
	assert.Equal(t, "Cash", fee.PaymentMethod)
	assert.NotNil(t, fee.PaymentDate)
}
