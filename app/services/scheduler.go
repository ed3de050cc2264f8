package services

import (
	"database/sql"
	"log"
	"time"

	"summit-schools/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger on the 1st of each month at 06:00
			if now.Day() == 1 && now.Hour() == 6 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [monthly billing]...")

				created, err := database.GenerateMonthlyFees(db, now)
				if err != nil {
					log.Printf("Error generating monthly fees: %v", err)
				} else {
					log.Printf("Monthly fee generation completed. Created %d invoices.", created)
				}
			}
		}
	}()
}
