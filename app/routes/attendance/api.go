package attendance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
)

const dateLayout = "2006-01-02"

// MarkAttendanceAPI upserts a batch of records for one class/subject/day.
// Items are processed independently; one bad record does not roll back the
// rest.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type attendanceItem struct {
		StudentID string `json:"student_id"`
		Status    string `json:"status"`
		Remarks   string `json:"remarks"`
	}
	type markRequest struct {
		ClassID        string           `json:"class_id"`
		SubjectID      string           `json:"subject_id"`
		TeacherID      string           `json:"teacher_id"`
		Date           string           `json:"date"`
		AttendanceData []attendanceItem `json:"attendance_data"`
	}

	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.ClassID == "" || req.SubjectID == "" || req.TeacherID == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "class_id, subject_id, teacher_id and date are required"})
	}

	// The calendar day in server-local time; stored as a DATE so repeat
	// marks for the same day collapse onto one row.
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
	}

	db := config.GetDB()
	var records []*models.Attendance
	var failures []fiber.Map

	for _, item := range req.AttendanceData {
		status := models.AttendanceStatus(item.Status)
		if item.StudentID == "" || !status.Valid() {
			failures = append(failures, fiber.Map{"student_id": item.StudentID, "message": "invalid student or status"})
			continue
		}

		record := &models.Attendance{
			StudentID: item.StudentID,
			ClassID:   req.ClassID,
			SubjectID: req.SubjectID,
			TeacherID: req.TeacherID,
			Date:      date,
			Status:    status,
			Remarks:   item.Remarks,
		}
		if err := database.UpsertAttendance(db, record); err != nil {
			failures = append(failures, fiber.Map{"student_id": item.StudentID, "message": "failed to save record"})
			continue
		}
		records = append(records, record)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Attendance marked",
		"records":  records,
		"failures": failures,
	})
}

func GetAllAttendanceAPI(c *fiber.Ctx) error {
	records, err := database.GetAllAttendance(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance"})
	}
	return c.JSON(records)
}

func parseRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr == "" || endStr == "" {
		return nil, nil, nil
	}
	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	return &start, &end, nil
}

// GetAttendanceReportAPI returns a student's records plus the derived
// per-status summary.
func GetAttendanceReportAPI(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByStudent(config.GetDB(), c.Params("studentId"), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"summary": models.SummarizeAttendance(records),
	})
}

func GetAttendanceSummaryAPI(c *fiber.Ctx) error {
	records, err := database.GetAttendanceByStudent(config.GetDB(), c.Params("studentId"), nil, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance"})
	}
	return c.JSON(models.SummarizeAttendance(records))
}

func GetAttendanceByClassAPI(c *fiber.Ctx) error {
	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
		}
		date = &d
	}

	records, err := database.GetAttendanceByClass(config.GetDB(), c.Params("classId"), date, c.Query("subject_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance"})
	}
	return c.JSON(records)
}

func UpdateAttendanceAPI(c *fiber.Ctx) error {
	type updateRequest struct {
		Status  string `json:"status"`
		Remarks string `json:"remarks"`
	}

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid attendance status"})
	}

	record, err := database.UpdateAttendance(config.GetDB(), c.Params("id"), status, req.Remarks)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Attendance record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(record)
}

func DeleteAttendanceAPI(c *fiber.Ctx) error {
	if err := database.DeleteAttendance(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Attendance record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Attendance record deleted"})
}
