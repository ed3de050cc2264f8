package students

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin), SaveStudentAPI)
	api.Get("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetStudentsAPI)
	api.Get("/me", auth.RequireRoles(models.RoleStudent), GetMyProfileAPI)
	api.Get("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetStudentAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteStudentAPI)
}
