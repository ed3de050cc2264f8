package models

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount is returned for zero or negative payment amounts.
	ErrInvalidAmount = errors.New("invalid payment amount")
	// ErrOverpayment is returned when a payment exceeds the remaining
	// balance. Overpayments are rejected outright; there is no credit
	// tracking.
	ErrOverpayment = errors.New("payment exceeds remaining balance")
	// ErrAmountBelowPaid is returned when an invoice is repriced under
	// what has already been collected.
	ErrAmountBelowPaid = errors.New("amount cannot be less than what is already paid")
)

// Fee is an invoice against a student with partial-payment tracking.
// Invariant: Balance = Amount - AmountPaid, Status is Paid iff Balance is 0,
// Partial iff some but not all of Amount is paid, else Unpaid.
type Fee struct {
	ID            string     `json:"id"`
	StudentID     string     `json:"student_id" validate:"required,uuid"`
	Description   string     `json:"description" validate:"required"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	DueDate       time.Time  `json:"due_date"`
	AmountPaid    float64    `json:"amount_paid"`
	Balance       float64    `json:"balance"`
	Status        FeeStatus  `json:"status"`
	BillingPeriod *string    `json:"billing_period,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	StudentName   string     `json:"student_name,omitempty"`
	RollNumber    string     `json:"roll_number,omitempty"`

	PaymentHistory []*FeePayment `json:"payment_history,omitempty"`
}

// FeePayment is one immutable entry in a fee's payment history.
type FeePayment struct {
	ID     string    `json:"id"`
	FeeID  string    `json:"fee_id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Note   string    `json:"note,omitempty"`
	PaidAt time.Time `json:"paid_at"`
}

// ApplyPayment validates and applies a payment to the fee, appending to the
// in-memory history and recomputing balance and status. The caller persists
// the updated fee and the new history entry.
func (f *Fee) ApplyPayment(amount float64, method, note string) (*FeePayment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > f.Amount-f.AmountPaid {
		return nil, ErrOverpayment
	}
	if method == "" {
		method = "Cash"
	}

	payment := &FeePayment{
		FeeID:  f.ID,
		Amount: amount,
		Method: method,
		Note:   note,
		PaidAt: time.Now(),
	}

	f.AmountPaid += amount
	f.Balance = f.Amount - f.AmountPaid
	f.PaymentDate = &payment.PaidAt
	f.PaymentMethod = method
	f.recomputeStatus()
	f.PaymentHistory = append(f.PaymentHistory, payment)
	return payment, nil
}

// SetAmount reprices the invoice, keeping balance and status consistent
// with what has already been paid. A fully paid fee repriced upward drops
// back to Partial.
func (f *Fee) SetAmount(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount < f.AmountPaid {
		return ErrAmountBelowPaid
	}
	f.Amount = amount
	f.Balance = amount - f.AmountPaid
	f.recomputeStatus()
	return nil
}

func (f *Fee) recomputeStatus() {
	switch {
	case f.Balance == 0:
		f.Status = FeePaid
	case f.AmountPaid > 0:
		f.Status = FeePartial
	default:
		f.Status = FeeUnpaid
	}
}
