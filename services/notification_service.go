// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// SendReportNotifications fans a submitted report out to the organization's
// active recipients for that report type. Failures are logged per recipient
// and never propagated; report submission must not depend on delivery.
func (s *NotificationService) SendReportNotifications(orgID, reportID uuid.UUID, reportType, message string) {
	var recipients []models.NotificationRecipient
	if err := s.db.Where("organization_id = ? AND is_active = true AND report_types LIKE ?",
		orgID, "%"+reportType+"%").Find(&recipients).Error; err != nil {
		log.Printf("Org %s: failed to fetch notification recipients: %v", orgID, err)
		return
	}

	for _, recipient := range recipients {
		s.send(orgID, reportID, reportType, recipient, message)
	}
}

func (s *NotificationService) send(orgID, reportID uuid.UUID, reportType string, recipient models.NotificationRecipient, message string) {
	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(recipient.Phone, "+") {
		to = "whatsapp:" + recipient.Phone
		channel = "whatsapp"
	} else {
		to = recipient.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send notification to %s: %v", recipient.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Notification sent to %s, SID: %s", recipient.Phone, *resp.Sid)
	} else {
		log.Printf("Notification sent to %s, but no SID returned", recipient.Phone)
	}

	notificationLog := models.NotificationLog{
		OrganizationID: orgID,
		ReportID:       reportID,
		ReportType:     reportType,
		RecipientID:    recipient.ID,
		Message:        message,
		Status:         status,
		ErrorMessage:   errorMsg,
		Channel:        channel,
		SentAt:         time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		log.Printf("Failed to log notification for recipient %s: %v", recipient.ID, err)
	}
}

// IncidentMessage builds the alert body for a submitted incident report.
func IncidentMessage(report models.IncidentReport) string {
	return fmt.Sprintf("Incident report submitted: %s (%s severity) at %s on %s. Reported by %s.",
		report.IncidentType, report.SeverityLevel, report.Location,
		report.IncidentDate.Format("01/02/2006"), report.ReporterName)
}

// SendSurveyReminders messages directors who have not submitted a weekly
// survey in the past 7 days. Invoked by the daily scheduler.
func (s *NotificationService) SendSurveyReminders() {
	log.Println("Starting survey reminder processing...")

	var directors []models.User
	if err := s.db.Where("role = ? AND is_active = true AND survey_reminders = true", "director").
		Find(&directors).Error; err != nil {
		log.Printf("Failed to fetch directors: %v", err)
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	for _, director := range directors {
		var count int64
		if err := s.db.Model(&models.RecoverySurvey{}).
			Where("reporter_user_id = ? AND status = ? AND created_at >= ?",
				director.ID, models.ReportStatusSubmitted, weekAgo).
			Count(&count).Error; err != nil {
			log.Printf("Director %s: failed to check surveys: %v", director.ID, err)
			continue
		}
		if count > 0 || director.Phone == "" {
			continue
		}

		recipient := models.NotificationRecipient{
			ID:             director.ID,
			OrganizationID: director.OrganizationID,
			Name:           director.Name,
			Phone:          director.Phone,
		}
		message := fmt.Sprintf("Hi %s, your weekly director survey for %s has not been submitted yet. Please complete it today.",
			director.Name, director.ProgramName)
		s.send(director.OrganizationID, director.ID, "survey", recipient, message)
	}

	log.Println("Survey reminder processing completed")
}
