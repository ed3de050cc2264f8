package main

import (
	"log"
	"os"
	"path/filepath"

	"summit-schools/app/config"
	"summit-schools/app/database"
	"summit-schools/app/routes/attendance"
	"summit-schools/app/routes/auth"
	"summit-schools/app/routes/classes"
	"summit-schools/app/routes/dashboard"
	"summit-schools/app/routes/exams"
	"summit-schools/app/routes/fees"
	"summit-schools/app/routes/parents"
	"summit-schools/app/routes/reports"
	"summit-schools/app/routes/results"
	"summit-schools/app/routes/students"
	"summit-schools/app/routes/subjects"
	"summit-schools/app/routes/teachers"
	"summit-schools/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// errorHandler turns unhandled errors into the flat JSON bodies the handlers
// use. 500 details are logged, never sent to the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		if code < fiber.StatusInternalServerError {
			message = e.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}

func main() {
	// Load environment configuration
	config.Load()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create upload directories
	for _, dir := range []string{"exam-papers", "answer-keys"} {
		if err := os.MkdirAll(filepath.Join(config.AppConfig.UploadDir, dir), 0o755); err != nil {
			log.Fatal("Failed to create upload directory:", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigin,
		AllowCredentials: true,
	}))

	// Uploaded files
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentRoutes(app)

	// Setup teachers routes
	teachers.SetupTeacherRoutes(app)

	// Setup parents routes
	parents.SetupParentRoutes(app)

	// Setup classes routes
	classes.SetupClassRoutes(app)

	// Setup subjects routes
	subjects.SetupSubjectRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup exams routes
	exams.SetupExamRoutes(app)

	// Setup results routes
	results.SetupResultRoutes(app)

	// Setup fees routes
	fees.SetupFeeRoutes(app)

	// Setup reports routes
	reports.SetupReportRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
