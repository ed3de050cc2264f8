package subjects

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupSubjectRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateSubjectAPI)
	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateSubjectAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteSubjectAPI)
}
