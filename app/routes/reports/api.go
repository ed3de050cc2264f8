package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"summit-schools/app/config"
	"summit-schools/app/database"
)

// GetSystemReportAPI rolls up fees, enrollment and attendance over a range.
// The range query parameter is daily (last 7 days), monthly (last 6 months,
// the default) or yearly (since the start of the year).
func GetSystemReportAPI(c *fiber.Ctx) error {
	now := time.Now()
	var since time.Time

	rng := c.Query("range", "monthly")
	switch rng {
	case "daily":
		since = now.AddDate(0, 0, -7)
	case "monthly":
		since = now.AddDate(0, -6, 0)
	case "yearly":
		since = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "range must be daily, monthly or yearly"})
	}

	report, err := database.GetSystemReport(config.GetDB(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{
		"range":  rng,
		"since":  since,
		"report": report,
	})
}
