package controllers

import (
	"errors"
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

// CreateSurvey maps the submitted wizard form state into a draft weekly
// report record
func CreateSurvey(c *gin.Context) {
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

	var form wizard.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	survey, err := services.MapSurvey(form, orgUUID, uuid.Must(uuid.Parse(userID.(string))))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&survey).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create survey")
		return
	}

	c.JSON(http.StatusCreated, survey)
}

// GetSurveys retrieves all weekly reports for the organization
func GetSurveys(c *gin.Context) {
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

	var surveys []models.RecoverySurvey
	if err := query.Order("report_date DESC").Find(&surveys).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve surveys")
		return
	}

	c.JSON(http.StatusOK, surveys)
}

// GetSurvey retrieves one weekly report
func GetSurvey(c *gin.Context) {
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

	surveyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid survey ID format")
		return
	}

	var survey models.RecoverySurvey
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, surveyUUID).
		First(&survey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Survey not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, survey)
}

// UpdateSurvey remaps the full wizard form onto an existing draft
func UpdateSurvey(c *gin.Context) {
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

	surveyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid survey ID format")
		return
	}

	var existing models.RecoverySurvey
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, surveyUUID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Survey not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if existing.Status != models.ReportStatusDraft {
		utils.RespondWithError(c, http.StatusConflict, "Submitted surveys cannot be edited")
		return
	}

	var form wizard.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	survey, err := services.MapSurvey(form, orgUUID, uuid.Must(uuid.Parse(userID.(string))))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	survey.ID = existing.ID
	survey.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&survey).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update survey")
		return
	}

	c.JSON(http.StatusOK, survey)
}

// SubmitSurvey flips a draft to submitted
func SubmitSurvey(c *gin.Context) {
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

	surveyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid survey ID format")
		return
	}

	var survey models.RecoverySurvey
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, surveyUUID).
		First(&survey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Survey not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if survey.Status == models.ReportStatusSubmitted {
		c.JSON(http.StatusOK, survey)
		return
	}

	now := time.Now()
	survey.Status = models.ReportStatusSubmitted
	survey.SubmittedAt = &now
	if err := config.DB.Save(&survey).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit survey")
		return
	}

	c.JSON(http.StatusOK, survey)
}

// DeleteSurvey removes a draft weekly report
func DeleteSurvey(c *gin.Context) {
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

	surveyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid survey ID format")
		return
	}

	result := config.DB.Where("organization_id = ? AND id = ? AND status = ?",
		orgUUID, surveyUUID, models.ReportStatusDraft).
		Delete(&models.RecoverySurvey{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete survey")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Draft survey not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Survey deleted successfully"})
}
