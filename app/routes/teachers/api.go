package teachers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
	"summit-schools/app/validation"
)

type saveTeacherRequest struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	Specialty     string `json:"specialty"`
}

// SaveTeacherAPI creates or updates a teacher profile, creating the backing
// user from email/password when no user_id is supplied.
func SaveTeacherAPI(c *fiber.Ctx) error {
	var req saveTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	db := config.GetDB()

	if req.UserID == "" && req.Email != "" && req.Password != "" {
		if _, err := database.GetUserByEmail(db, req.Email); err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists with this email"})
		} else if err != sql.ErrNoRows {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		user := &models.User{Email: req.Email, Password: hashed, Role: models.RoleTeacher}
		if err := database.CreateUser(db, user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		req.UserID = user.ID
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "user_id or email/password required"})
	}

	teacher := &models.Teacher{
		UserID:        req.UserID,
		Name:          req.Name,
		Phone:         req.Phone,
		Qualification: req.Qualification,
		Specialty:     req.Specialty,
	}
	if err := validation.ValidateStruct(teacher); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	existing, err := database.GetTeacherByUserID(db, req.UserID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if existing != nil {
		teacher.ID = existing.ID
		if err := database.UpdateTeacherProfile(db, teacher); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(teacher)
	}

	if err := database.CreateTeacherProfile(db, teacher); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch teachers"})
	}
	return c.JSON(teachers)
}

func GetMyProfileAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByUserID(config.GetDB(), auth.CurrentUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Teacher profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(teacher)
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Teacher not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(teacher)
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacherProfile(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Teacher not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}
