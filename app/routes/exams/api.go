package exams

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
	"summit-schools/app/validation"
)

type examRequest struct {
	Name       string  `json:"name"`
	ExamType   string  `json:"exam_type"`
	ClassID    string  `json:"class_id"`
	SubjectID  string  `json:"subject_id"`
	TeacherID  string  `json:"teacher_id"`
	ExamDate   string  `json:"exam_date"`
	Duration   int     `json:"duration"`
	TotalMarks float64 `json:"total_marks"`
	Room       string  `json:"room"`
}

// CreateExamAPI inserts a new exam in pending state. The teacher reference
// must be a teacher profile id and is checked here rather than repaired
// later.
func CreateExamAPI(c *fiber.Ctx) error {
	var req examRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	examDate, err := time.Parse(time.RFC3339, req.ExamDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid exam_date, expected RFC 3339"})
	}

	exam := &models.Exam{
		Name:       req.Name,
		ExamType:   req.ExamType,
		ClassID:    req.ClassID,
		SubjectID:  req.SubjectID,
		TeacherID:  req.TeacherID,
		ExamDate:   examDate,
		Duration:   req.Duration,
		TotalMarks: req.TotalMarks,
		Room:       req.Room,
	}
	if err := validation.ValidateStruct(exam); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	db := config.GetDB()
	for _, check := range []struct {
		exists func(*sql.DB, string) (bool, error)
		id     string
		name   string
	}{
		{database.ClassExists, exam.ClassID, "Class"},
		{database.SubjectExists, exam.SubjectID, "Subject"},
		{database.TeacherExists, exam.TeacherID, "Teacher"},
	} {
		exists, err := check.exists(db, check.id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		if !exists {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": check.name + " not found"})
		}
	}

	if err := database.CreateExam(db, exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(exam)
}

func GetPendingExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetExamsByStatus(config.GetDB(), models.ExamPending, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch exams"})
	}
	return c.JSON(exams)
}

// GetApprovedExamsAPI lists approved exams, optionally for one class. This
// is the student-facing listing; unapproved exams are never included.
func GetApprovedExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetExamsByStatus(config.GetDB(), models.ExamApproved, c.Query("class_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch exams"})
	}
	return c.JSON(exams)
}

func GetAllExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetAllExams(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch exams"})
	}
	return c.JSON(exams)
}

func GetExamAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(exam)
}

func ApproveExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	exam, err := database.GetExamByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if err := exam.Approve(auth.CurrentUserID(c)); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.SaveExamStatus(db, exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Exam approved successfully", "exam": exam})
}

func RejectExamAPI(c *fiber.Ctx) error {
	type rejectRequest struct {
		Reason string `json:"reason"`
	}

	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	db := config.GetDB()
	exam, err := database.GetExamByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if err := exam.Reject(req.Reason); err != nil {
		if err == models.ErrReasonRequired {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.SaveExamStatus(db, exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Exam rejected", "exam": exam})
}

func UpdateExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	exam, err := database.GetExamByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	var req examRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Name != "" {
		exam.Name = req.Name
	}
	if req.ExamType != "" {
		exam.ExamType = req.ExamType
	}
	if req.ExamDate != "" {
		examDate, err := time.Parse(time.RFC3339, req.ExamDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid exam_date, expected RFC 3339"})
		}
		exam.ExamDate = examDate
	}
	if req.Duration > 0 {
		exam.Duration = req.Duration
	}
	if req.TotalMarks > 0 {
		exam.TotalMarks = req.TotalMarks
	}
	if req.Room != "" {
		exam.Room = req.Room
	}

	if err := database.UpdateExam(db, exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(exam)
}

func DeleteExamAPI(c *fiber.Ctx) error {
	if err := database.DeleteExam(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Exam deleted"})
}
