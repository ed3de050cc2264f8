package reports

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupReportRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/system", auth.RequireRoles(models.RoleAdmin), GetSystemReportAPI)
}
