package results

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/services"
	"summit-schools/app/validation"
)

type resultRequest struct {
	ExamID        string  `json:"exam_id"`
	StudentID     string  `json:"student_id"`
	SubjectID     string  `json:"subject_id"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
}

func buildResult(req resultRequest) (*models.Result, error) {
	result := &models.Result{
		ExamID:        req.ExamID,
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}
	if err := validation.ValidateStruct(result); err != nil {
		return nil, err
	}
	if req.MarksObtained > req.TotalMarks {
		return nil, fmt.Errorf("marks_obtained cannot exceed total_marks")
	}
	// The grade is never taken from the request body.
	result.Grade = services.ComputeGrade(req.MarksObtained, req.TotalMarks)
	return result, nil
}

// SaveResultAPI records marks for one student in one exam subject. A second
// submission for the same triple overwrites the earlier one.
func SaveResultAPI(c *fiber.Ctx, db *sql.DB) error {
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	result, err := buildResult(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	exists, err := database.ExamExists(db, result.ExamID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
	}

	if err := database.UpsertResult(db, result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

type bulkResultFailure struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// SaveBulkResultsAPI records a whole mark sheet in one request. Each entry is
// processed independently so one bad row does not discard the rest.
func SaveBulkResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		ExamID    string `json:"exam_id"`
		SubjectID string `json:"subject_id"`
		Results   []struct {
			StudentID     string  `json:"student_id"`
			MarksObtained float64 `json:"marks_obtained"`
			TotalMarks    float64 `json:"total_marks"`
		} `json:"results"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if len(req.Results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "results must not be empty"})
	}

	exists, err := database.ExamExists(db, req.ExamID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
	}

	var saved []*models.Result
	var failures []bulkResultFailure
	for _, entry := range req.Results {
		result, err := buildResult(resultRequest{
			ExamID:        req.ExamID,
			StudentID:     entry.StudentID,
			SubjectID:     req.SubjectID,
			MarksObtained: entry.MarksObtained,
			TotalMarks:    entry.TotalMarks,
		})
		if err != nil {
			failures = append(failures, bulkResultFailure{StudentID: entry.StudentID, Reason: err.Error()})
			continue
		}
		if err := database.UpsertResult(db, result); err != nil {
			failures = append(failures, bulkResultFailure{StudentID: entry.StudentID, Reason: "could not save result"})
			continue
		}
		saved = append(saved, result)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  fmt.Sprintf("Saved %d results", len(saved)),
		"results":  saved,
		"failures": failures,
	})
}

func GetResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetAllResults(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(results)
}

func GetStudentResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetResultsByStudent(db, c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(results)
}

func GetExamResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetResultsByExam(db, c.Params("examId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(results)
}

// UpdateResultAPI rewrites the marks of one result and recomputes its grade.
func UpdateResultAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		MarksObtained float64 `json:"marks_obtained"`
		TotalMarks    float64 `json:"total_marks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.TotalMarks <= 0 || req.MarksObtained < 0 || req.MarksObtained > req.TotalMarks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid marks"})
	}

	grade := services.ComputeGrade(req.MarksObtained, req.TotalMarks)
	if err := database.UpdateResultMarks(db, c.Params("id"), req.MarksObtained, req.TotalMarks, grade); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{
		"message": "Result updated successfully",
		"grade":   grade,
	})
}

func DeleteResultAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteResult(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Result not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Result deleted successfully"})
}
