package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/importer"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceEntryInput defines the expected JSON structure for recording
// service hours. HoursWorked may be given directly or derived from a
// start/end time-of-day pair.
type CreateServiceEntryInput struct {
	Date               string  `json:"date" binding:"required"` // YYYY-MM-DD
	CustomerID         string  `json:"customerId" binding:"required"`
	FacilityLocationID string  `json:"facilityLocationId" binding:"required"`
	NumberOfResidents  int     `json:"numberOfResidents" binding:"required,gt=0"`
	HoursWorked        float64 `json:"hoursWorked"`
	StartTime          string  `json:"startTime"` // HH:MM, optional
	EndTime            string  `json:"endTime"`   // HH:MM, optional
	Notes              string  `json:"notes"`
}

// ImportServiceEntriesInput carries the raw CSV text of a bulk import
type ImportServiceEntriesInput struct {
	CSV string `json:"csv" binding:"required"`
}

// CreateServiceEntry records one volunteer service entry. TotalHours is
// derived in the model hook, never taken from input.
func CreateServiceEntry(c *gin.Context) {
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

	var input CreateServiceEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	hours := input.HoursWorked
	if hours == 0 && input.StartTime != "" && input.EndTime != "" {
		derived, err := hoursBetween(input.StartTime, input.EndTime)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		hours = derived
	}
	if hours <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "hoursWorked must be positive")
		return
	}

	customerUUID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}
	locationUUID, err := uuid.Parse(input.FacilityLocationID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid facility location ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var location models.FacilityLocation
	if err := config.DB.Where("id = ?", locationUUID).First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Facility location not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	entry := models.ServiceEntry{
		OrganizationID:     orgUUID,
		CreatedByUserID:    uuid.Must(uuid.Parse(userID.(string))),
		Date:               date,
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		FacilityLocationID: location.ID,
		Location:           location.Name,
		NumberOfResidents:  input.NumberOfResidents,
		HoursWorked:        hours,
		Notes:              input.Notes,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// hoursBetween derives a decimal hour count from an HH:MM pair
func hoursBetween(start, end string) (float64, error) {
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return 0, errors.New("startTime must be HH:MM")
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return 0, errors.New("endTime must be HH:MM")
	}
	diff := endT.Sub(startT)
	if diff <= 0 {
		return 0, errors.New("endTime must be after startTime")
	}
	return diff.Hours(), nil
}

// GetServiceEntries retrieves entries for the organization, optionally
// filtered by location
func GetServiceEntries(c *gin.Context) {
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
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}

	var entries []models.ServiceEntry
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteServiceEntry removes one entry
func DeleteServiceEntry(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service entry ID format")
		return
	}

	result := config.DB.Where("organization_id = ? AND id = ?", orgUUID, entryUUID).
		Delete(&models.ServiceEntry{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service entry")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service entry deleted successfully"})
}

// ValidateServiceEntriesImport runs the CSV pipeline and returns both the
// accepted rows and the row-level errors so the client can display them
// side by side. It never writes anything.
func ValidateServiceEntriesImport(c *gin.Context) {
	var input ImportServiceEntriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rows, parseErrors := importer.ValidateAndParseCSV(input.CSV)
	c.JSON(http.StatusOK, gin.H{
		"rows":   rows,
		"errors": parseErrors,
		"clean":  len(parseErrors) == 0,
	})
}

// ImportServiceEntries is the all-or-nothing import gate: any row-level
// error rejects the whole file, even when other rows parsed fine.
func ImportServiceEntries(c *gin.Context) {
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

	var input ImportServiceEntriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rows, parseErrors := importer.ValidateAndParseCSV(input.CSV)
	if len(parseErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": parseErrors})
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("organization_id = ?", orgUUID).Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	var locations []models.FacilityLocation
	if err := config.DB.Find(&locations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve locations")
		return
	}

	entries, err := importer.CreateServiceEntriesFromCSV(rows, customers, locations)
	if err != nil {
		// Fail-fast batch: no partial commit
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{err.Error()}})
		return
	}

	creatorID := uuid.Must(uuid.Parse(userID.(string)))
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			entries[i].OrganizationID = orgUUID
			entries[i].CreatedByUserID = creatorID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import service entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": len(entries)})
}
