package parents

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
	"summit-schools/app/validation"
)

type saveParentRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// SaveParentAPI creates or updates a parent profile, creating the backing
// user from email/password when no user_id is supplied.
func SaveParentAPI(c *fiber.Ctx) error {
	var req saveParentRequest
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

		user := &models.User{Email: req.Email, Password: hashed, Role: models.RoleParent}
		if err := database.CreateUser(db, user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		req.UserID = user.ID
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "user_id or email/password required"})
	}

	parent := &models.Parent{
		UserID:  req.UserID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := validation.ValidateStruct(parent); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.CreateParentProfile(db, parent); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Parent profile already exists for this user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(parent)
}

func GetParentsAPI(c *fiber.Ctx) error {
	parents, err := database.GetAllParents(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch parents"})
	}
	return c.JSON(parents)
}

// AddStudentAPI links a student to a parent. Linking an already-linked pair
// fails.
func AddStudentAPI(c *fiber.Ctx) error {
	type linkRequest struct {
		ParentID  string `json:"parent_id"`
		StudentID string `json:"student_id"`
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.ParentID == "" || req.StudentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "parent_id and student_id are required"})
	}

	db := config.GetDB()
	parent, err := database.GetParentByID(db, req.ParentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Parent not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	exists, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}

	if err := database.LinkStudentToParent(db, req.ParentID, req.StudentID); err != nil {
		if err == database.ErrAlreadyLinked {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Student already linked to this parent"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	parent.Children, err = database.GetChildrenByParentID(db, req.ParentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Student linked successfully", "parent": parent})
}

func GetMyChildrenAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	parent, err := database.GetParentByUserID(db, auth.CurrentUserID(c))
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
	return c.JSON(children)
}

func DeleteParentAPI(c *fiber.Ctx) error {
	if err := database.DeleteParentProfile(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Parent not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Parent deleted"})
}
