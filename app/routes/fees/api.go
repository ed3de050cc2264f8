package fees

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/validation"
)

const dateLayout = "2006-01-02"

// CreateFeeAPI issues an invoice against a student. Amounts start fully
// unpaid.
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		StudentID   string  `json:"student_id"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		DueDate     string  `json:"due_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	dueDate, err := time.ParseInLocation(dateLayout, req.DueDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid due_date, expected YYYY-MM-DD"})
	}

	fee := &models.Fee{
		StudentID:   req.StudentID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
	}
	if err := validation.ValidateStruct(fee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	exists, err := database.StudentExists(db, fee.StudentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}

	if err := database.CreateFee(db, fee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	fees, err := database.GetAllFees(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fees)
}

func GetFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fee)
}

func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	fees, err := database.GetFeesByStudent(db, c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fees)
}

// RecordPaymentAPI applies a partial or full payment to a fee. Overpayments
// and non-positive amounts are rejected before anything is written.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
		Note   string  `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	payment, err := fee.ApplyPayment(req.Amount, req.Method, req.Note)
	if err != nil {
		if errors.Is(err, models.ErrInvalidAmount) || errors.Is(err, models.ErrOverpayment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if err := database.SavePayment(db, fee, payment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"fee":     fee,
		"payment": payment,
	})
}

// UpdateFeeAPI edits the invoice itself. Payment totals are never edited
// here; only RecordPaymentAPI touches them.
func UpdateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	var req struct {
		Description *string  `json:"description"`
		Amount      *float64 `json:"amount"`
		DueDate     *string  `json:"due_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Description != nil {
		fee.Description = *req.Description
	}
	if req.Amount != nil {
		if err := fee.SetAmount(*req.Amount); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if req.DueDate != nil {
		dueDate, err := time.ParseInLocation(dateLayout, *req.DueDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid due_date, expected YYYY-MM-DD"})
		}
		fee.DueDate = dueDate
	}

	if err := database.UpdateFee(db, fee); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	fee, err = database.GetFeeByID(db, fee.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fee)
}

func DeleteFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFee(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Fee deleted successfully"})
}

// GenerateMonthlyFeesAPI bills every student with a configured monthly fee
// for the current month. Running it twice in one month creates nothing new.
func GenerateMonthlyFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	created, err := database.GenerateMonthlyFees(db, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Generated %d monthly fee invoices", created),
		"created": created,
	})
}
