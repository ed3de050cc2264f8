package results

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupResultRoutes(app *fiber.App) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return SaveResultAPI(c, config.GetDB())
	})
	api.Post("/bulk", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return SaveBulkResultsAPI(c, config.GetDB())
	})
	api.Get("/", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return GetResultsAPI(c, config.GetDB())
	})
	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentResultsAPI(c, config.GetDB())
	})
	api.Get("/exam/:examId", func(c *fiber.Ctx) error {
		return GetExamResultsAPI(c, config.GetDB())
	})
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return UpdateResultAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteResultAPI(c, config.GetDB())
	})
}
