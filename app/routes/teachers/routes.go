package teachers

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupTeacherRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin), SaveTeacherAPI)
	api.Get("/", auth.RequireRoles(models.RoleAdmin), GetTeachersAPI)
	api.Get("/me", auth.RequireRoles(models.RoleTeacher), GetMyProfileAPI)
	api.Get("/:id", auth.RequireRoles(models.RoleAdmin), GetTeacherAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteTeacherAPI)
}
