package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
)

// GetStatsAPI returns the dashboard payload for whichever role is logged in.
func GetStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := auth.CurrentUserID(c)

	switch auth.CurrentRole(c) {
	case models.RoleAdmin:
		stats, err := database.GetAdminStats(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(stats)

	case models.RoleTeacher:
		teacher, err := database.GetTeacherByUserID(db, userID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Teacher profile not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		stats, err := database.GetTeacherStats(db, teacher.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(stats)

	case models.RoleStudent:
		student, err := database.GetStudentByUserID(db, userID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student profile not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		stats, err := database.GetStudentStats(db, student.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(stats)

	case models.RoleParent:
		parent, err := database.GetParentByUserID(db, userID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Parent profile not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		children, err := database.GetChildrenByParentID(db, parent.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(fiber.Map{
			"total_children": len(children),
			"children":       children,
		})
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Unknown role"})
}
