// services/scheduler.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs the daily survey reminder sweep at 9 AM.
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendSurveyReminders); err != nil {
		log.Printf("Failed to schedule survey reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}
