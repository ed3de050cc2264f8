package attendance

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), MarkAttendanceAPI)
	api.Get("/", auth.RequireRoles(models.RoleAdmin), GetAllAttendanceAPI)
	api.Get("/report/:studentId", GetAttendanceReportAPI)
	api.Get("/summary/:studentId", GetAttendanceSummaryAPI)
	api.Get("/class/:classId", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetAttendanceByClassAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), UpdateAttendanceAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteAttendanceAPI)
}
