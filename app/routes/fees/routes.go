package fees

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupFeeRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	admin := auth.RequireRoles(models.RoleAdmin)

	api.Post("/", admin, func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, config.GetDB())
	})
	api.Post("/generate-monthly", admin, func(c *fiber.Ctx) error {
		return GenerateMonthlyFeesAPI(c, config.GetDB())
	})
	api.Get("/", admin, func(c *fiber.Ctx) error {
		return GetFeesAPI(c, config.GetDB())
	})
	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeAPI(c, config.GetDB())
	})
	api.Put("/:id/pay", admin, func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
	api.Put("/:id", admin, func(c *fiber.Ctx) error {
		return UpdateFeeAPI(c, config.GetDB())
	})
	api.Delete("/:id", admin, func(c *fiber.Ctx) error {
		return DeleteFeeAPI(c, config.GetDB())
	})
}
