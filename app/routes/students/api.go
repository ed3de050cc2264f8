package students

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/models"
	"summit-schools/app/routes/auth"
	"summit-schools/app/validation"
)

type saveStudentRequest struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Gender          string  `json:"gender"`
	DOB             string  `json:"dob"`
	RollNumber      string  `json:"roll_number"`
	AdmissionNumber string  `json:"admission_number"`
	ClassID         *string `json:"class_id"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	ParentName      string  `json:"parent_name"`
	ParentPhone     string  `json:"parent_phone"`
	MonthlyFee      float64 `json:"monthly_fee"`
}

// SaveStudentAPI creates or updates the student profile keyed by its backing
// user. When no user_id is given but email and password are, the backing
// user is created first with the student role.
func SaveStudentAPI(c *fiber.Ctx) error {
	var req saveStudentRequest
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

		user := &models.User{Email: req.Email, Password: hashed, Role: models.RoleStudent}
		if err := database.CreateUser(db, user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		req.UserID = user.ID
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "user_id or email/password required"})
	}

	if req.ClassID != nil && *req.ClassID != "" {
		exists, err := database.ClassExists(db, *req.ClassID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		if !exists {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Class not found"})
		}
	} else {
		req.ClassID = nil
	}

	student := &models.Student{
		UserID:          req.UserID,
		Name:            req.Name,
		Gender:          models.Gender(req.Gender),
		RollNumber:      req.RollNumber,
		AdmissionNumber: req.AdmissionNumber,
		ClassID:         req.ClassID,
		Phone:           req.Phone,
		Address:         req.Address,
		ParentName:      req.ParentName,
		ParentPhone:     req.ParentPhone,
		MonthlyFee:      req.MonthlyFee,
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid dob format. Use YYYY-MM-DD"})
		}
		student.DOB = dob
	}
	if err := validation.ValidateStruct(student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	existing, err := database.GetStudentByUserID(db, req.UserID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if existing != nil {
		if err := database.UpdateStudentProfile(db, student); err != nil {
			if database.IsUniqueViolation(err) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Roll or admission number already in use"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		updated, err := database.GetStudentByUserID(db, req.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
		return c.JSON(updated)
	}

	if err := database.CreateStudentProfile(db, student); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Roll or admission number already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB(), c.Query("class_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func GetMyProfileAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByUserID(config.GetDB(), auth.CurrentUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(student)
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(student)
}

// DeleteStudentAPI removes the profile; the backing user account remains.
func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudentProfile(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
