package exams

import (
	"database/sql"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// storeUpload validates the file and writes it under the upload directory,
// returning the relative URL path. Stored names carry a timestamp and a
// random suffix so resubmissions never collide.
func storeUpload(c *fiber.Ctx, file *multipart.FileHeader, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("only PDF, DOC, DOCX, JPG and PNG files are allowed")
	}
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds the 10MB limit")
	}

	dir := filepath.Join(config.AppConfig.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("uploads", subdir, name)), nil
}

func removeStoredFile(relURL string) {
	if relURL == "" {
		return
	}
	// Relative URLs always start with "uploads/".
	local := filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(strings.TrimPrefix(relURL, "uploads/")))
	os.Remove(local)
}

func UploadExamPaperAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	exam, err := database.GetExamByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	file, err := c.FormFile("exam_paper")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "exam_paper file is required"})
	}

	url, err := storeUpload(c, file, "exam-papers")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	removeStoredFile(exam.PaperURL)
	exam.PaperURL = url
	if err := database.SetExamPaperURL(db, exam.ID, url); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Exam paper uploaded successfully", "exam": exam})
}

func UploadAnswerKeyAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	exam, err := database.GetExamByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	file, err := c.FormFile("answer_key")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "answer_key file is required"})
	}

	url, err := storeUpload(c, file, "answer-keys")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	removeStoredFile(exam.AnswerKeyURL)
	exam.AnswerKeyURL = url
	if err := database.SetExamAnswerKeyURL(db, exam.ID, url); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Answer key uploaded successfully", "exam": exam})
}

// DownloadExamPaperAPI serves the paper. Non-admin callers only get papers
// of approved exams.
func DownloadExamPaperAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Exam not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if exam.Status != models.ExamApproved && auth.CurrentRole(c) != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Exam paper not yet approved"})
	}
	if exam.PaperURL == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No exam paper uploaded"})
	}

	local := filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(strings.TrimPrefix(exam.PaperURL, "uploads/")))
	if _, err := os.Stat(local); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "File not found"})
	}
	return c.Download(local)
}
