package parents

import (
	"github.com/gofiber/fiber/v2"

	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

func SetupParentRoutes(app *fiber.App) {
	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleAdmin), SaveParentAPI)
	api.Get("/", auth.RequireRoles(models.RoleAdmin), GetParentsAPI)
	api.Post("/add-student", auth.RequireRoles(models.RoleAdmin), AddStudentAPI)
	api.Get("/my-children", auth.RequireRoles(models.RoleParent), GetMyChildrenAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteParentAPI)
}
