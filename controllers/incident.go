package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/services"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/wizard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier delivers incident alerts. Wired in main after the Twilio
// config loads; a nil Notifier means notifications are skipped.
var Notifier *services.NotificationService

type SaveIncidentDraftInput struct {
	ID   *uuid.UUID  `json:"id"`
	Form wizard.Form `json:"form" binding:"required"`
}

type ReviewIncidentInput struct {
	Resolved            *bool   `json:"resolved" binding:"required"`
	ActionsTakenOutcome *string `json:"actionsTakenOutcome"`
}

// SaveIncidentDraft upserts the raw wizard form state for an in-progress
// report. Called on every auto-save tick, so it never validates the form
// beyond sanitizing it; validation happens at submission.
func SaveIncidentDraft(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input SaveIncidentDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	form := services.SanitizeForm(input.Form)
	state := models.JSONB{}
	for k, v := range form {
		state[k] = v
	}

	if input.ID != nil {
		var report models.IncidentReport
		if err := config.DB.Where("organization_id = ? AND id = ? AND status = ?",
			orgUUID, *input.ID, models.ReportStatusDraft).
			First(&report).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		report.FormState = state
		if err := config.DB.Save(&report).Error; err != nil {
			log.Printf("Failed to auto-save incident draft %s: %v", report.ID, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save draft")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": report.ID, "status": report.Status})
		return
	}

	report := models.IncidentReport{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		ReporterUserID: userUUID,
		ReporterName:   wizard.TextField(form, "reporterName"),
		Status:         models.ReportStatusDraft,
		FormState:      state,
	}
	if err := config.DB.Create(&report).Error; err != nil {
		log.Printf("Failed to create incident draft: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": report.ID, "status": report.Status})
}

// GetIncidentReports retrieves all incident reports for the organization
func GetIncidentReports(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	query := config.DB.Where("organization_id = ?", orgUUID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []models.IncidentReport
	if err := query.Order("incident_date DESC").Find(&reports).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve incident reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetIncidentReport retrieves one incident report
func GetIncidentReport(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var report models.IncidentReport
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, reportUUID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// SubmitIncidentReport validates the final form, maps it onto the record,
// and fires notifications to the configured recipients. The body may carry
// the final form; when absent the stored draft state is used.
func SubmitIncidentReport(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var existing models.IncidentReport
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, reportUUID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if existing.Status != models.ReportStatusDraft {
		utils.RespondWithError(c, http.StatusConflict, "Report has already been submitted")
		return
	}

	var form wizard.Form
	if err := c.ShouldBindJSON(&form); err != nil || len(form) == 0 {
		form = wizard.Form{}
		for k, v := range existing.FormState {
			form[k] = v
		}
	}

	report, err := services.MapIncidentReport(form, orgUUID, userUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	report.ID = existing.ID
	report.CreatedAt = existing.CreatedAt
	report.Status = models.ReportStatusSubmitted
	report.SubmittedAt = &now
	report.FormState = models.JSONB{}

	if err := config.DB.Save(&report).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit incident report")
		return
	}

	if Notifier != nil {
		go Notifier.SendReportNotifications(orgUUID, report.ID, "incident", services.IncidentMessage(report))
	}

	c.JSON(http.StatusOK, report)
}

// ReviewIncidentReport records the manager's resolution on a submitted report
func ReviewIncidentReport(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var input ReviewIncidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var report models.IncidentReport
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, reportUUID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if report.Status == models.ReportStatusDraft {
		utils.RespondWithError(c, http.StatusConflict, "Draft reports cannot be reviewed")
		return
	}

	now := time.Now()
	report.Resolved = input.Resolved
	report.ActionsTakenOutcome = input.ActionsTakenOutcome
	report.ReviewedAt = &now
	report.ReviewedByUserID = &userUUID
	report.Status = models.ReportStatusReviewed

	if err := config.DB.Save(&report).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to review incident report")
		return
	}

	c.JSON(http.StatusOK, report)
}

type wizardQuestionView struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

type wizardSectionView struct {
	Title     string               `json:"title"`
	Tag       string               `json:"tag"`
	Questions []wizardQuestionView `json:"questions"`
}

// GetIncidentWizard evaluates the incident wizard against the stored draft
// state so the client can resume where the reporter left off.
func GetIncidentWizard(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var report models.IncidentReport
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, reportUUID).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Incident report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	form := wizard.Form{}
	for k, v := range report.FormState {
		form[k] = v
	}
	engine := wizard.NewEngine(wizard.IncidentSections(), form)

	sections := make([]wizardSectionView, 0, len(engine.Sections()))
	for i, s := range engine.Sections() {
		visible := map[string]bool{}
		for _, q := range engine.VisibleQuestions(i) {
			visible[q.Key] = true
		}
		view := wizardSectionView{Title: s.Title, Tag: s.Tag}
		for _, q := range s.Questions {
			view.Questions = append(view.Questions, wizardQuestionView{
				Key:     q.Key,
				Type:    q.Type,
				Label:   q.Label,
				Visible: visible[q.Key],
			})
		}
		sections = append(sections, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       report.ID,
		"status":   report.Status,
		"form":     report.FormState,
		"step":     engine.CurrentStep(),
		"subStep":  engine.CurrentSubStep(),
		"sections": sections,
	})
}
