package classes

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupClassRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateClassAPI)
	api.Get("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetClassesAPI)
	api.Get("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), GetClassAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateClassAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteClassAPI)
}
