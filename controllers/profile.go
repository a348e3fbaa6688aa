package controllers

import (
	"errors"
	"net/http"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	ProgramName    *string `json:"programName"`
	ProgramAddress *string `json:"programAddress"`

	SurveyReminders       *bool `json:"surveyReminders"`
	IncidentAlerts        *bool `json:"incidentAlerts"`
	SMSNotifications      *bool `json:"smsNotifications"`
	WhatsAppNotifications *bool `json:"whatsappNotifications"`
}

type CreateRecipientInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ReportTypes string `json:"reportTypes"`
}

type UpdateRecipientInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	ReportTypes *string `json:"reportTypes"`
	IsActive    *bool   `json:"isActive"`
}

// GetProfile returns the current user's program profile and notification
// preferences
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                    user.ID,
		"email":                 user.Email,
		"name":                  user.Name,
		"phone":                 user.Phone,
		"role":                  user.Role,
		"programName":           user.ProgramName,
		"programAddress":        user.ProgramAddress,
		"surveyReminders":       user.SurveyReminders,
		"incidentAlerts":        user.IncidentAlerts,
		"smsNotifications":      user.SMSNotifications,
		"whatsappNotifications": user.WhatsAppNotifications,
	})
}

// UpdateProfile applies partial updates to the profile and preferences
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.Phone = *input.Phone
	}
	if input.ProgramName != nil {
		user.ProgramName = *input.ProgramName
	}
	if input.ProgramAddress != nil {
		user.ProgramAddress = *input.ProgramAddress
	}
	if input.SurveyReminders != nil {
		user.SurveyReminders = *input.SurveyReminders
	}
	if input.IncidentAlerts != nil {
		user.IncidentAlerts = *input.IncidentAlerts
	}
	if input.SMSNotifications != nil {
		user.SMSNotifications = *input.SMSNotifications
	}
	if input.WhatsAppNotifications != nil {
		user.WhatsAppNotifications = *input.WhatsAppNotifications
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// GetRecipients lists the organization's notification recipients
func GetRecipients(c *gin.Context) {
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

	var recipients []models.NotificationRecipient
	if err := config.DB.Where("organization_id = ?", orgUUID).
		Order("name ASC").Find(&recipients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recipients")
		return
	}

	c.JSON(http.StatusOK, recipients)
}

// CreateRecipient adds a notification recipient for the organization
func CreateRecipient(c *gin.Context) {
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

	var input CreateRecipientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	reportTypes := input.ReportTypes
	if reportTypes == "" {
		reportTypes = "incident"
	}

	recipient := models.NotificationRecipient{
		OrganizationID: orgUUID,
		Name:           input.Name,
		Phone:          input.Phone,
		ReportTypes:    reportTypes,
		IsActive:       true,
	}
	if err := config.DB.Create(&recipient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create recipient")
		return
	}

	c.JSON(http.StatusCreated, recipient)
}

// UpdateRecipient applies partial updates to a recipient
func UpdateRecipient(c *gin.Context) {
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

	recipientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipient ID format")
		return
	}

	var input UpdateRecipientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var recipient models.NotificationRecipient
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, recipientUUID).
		First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Recipient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		recipient.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		recipient.Phone = *input.Phone
	}
	if input.ReportTypes != nil {
		recipient.ReportTypes = *input.ReportTypes
	}
	if input.IsActive != nil {
		recipient.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&recipient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update recipient")
		return
	}

	c.JSON(http.StatusOK, recipient)
}

// DeleteRecipient removes a recipient from the organization
func DeleteRecipient(c *gin.Context) {
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

	recipientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipient ID format")
		return
	}

	result := config.DB.Where("organization_id = ? AND id = ?", orgUUID, recipientUUID).
		Delete(&models.NotificationRecipient{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete recipient")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Recipient not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipient deleted successfully"})
}
