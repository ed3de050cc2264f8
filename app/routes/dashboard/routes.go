package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStatsAPI)
	api.Get("/stats", GetStatsAPI)
}
