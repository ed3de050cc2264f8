package exams

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupExamRoutes(app *fiber.App) {
	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), CreateExamAPI)
	api.Get("/pending", auth.RequireRoles(models.RoleAdmin), GetPendingExamsAPI)
	api.Get("/approved", GetApprovedExamsAPI)
	api.Get("/all", auth.RequireRoles(models.RoleAdmin), GetAllExamsAPI)

	api.Put("/:id/approve", auth.RequireRoles(models.RoleAdmin), ApproveExamAPI)
	api.Put("/:id/reject", auth.RequireRoles(models.RoleAdmin), RejectExamAPI)

	api.Post("/:id/upload-paper", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), UploadExamPaperAPI)
	api.Post("/:id/upload-answer-key", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), UploadAnswerKeyAPI)
	api.Get("/:id/download-paper", DownloadExamPaperAPI)

	api.Get("/:id", GetExamAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), UpdateExamAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteExamAPI)
}
