package controllers

import (
	"net/http"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/services"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func serviceEntriesForExport(c *gin.Context) ([]models.ServiceEntry, string, string, bool) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return nil, "", "", false
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return nil, "", "", false
	}

	locationFilter := c.Query("location")
	rangeFilter := c.Query("range")

	query := config.DB.Where("organization_id = ?", orgUUID)
	if locationFilter != "" {
		canonical, ok := models.CanonicalLocationName(locationFilter)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown facility location")
			return nil, "", "", false
		}
		locationFilter = canonical
		query = query.Where("location = ?", canonical)
	}

	var entries []models.ServiceEntry
	if err := query.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service entries")
		return nil, "", "", false
	}

	if rangeFilter != "" {
		entries = services.FilterByDateRange(entries, rangeFilter, time.Now())
	}

	return entries, locationFilter, rangeFilter, true
}

// ExportServiceEntriesCSV streams the filtered entries as a CSV attachment
func ExportServiceEntriesCSV(c *gin.Context) {
	entries, locationFilter, rangeFilter, ok := serviceEntriesForExport(c)
	if !ok {
		return
	}

	filename := services.ServiceEntriesCSVFilename(locationFilter, rangeFilter, time.Now())
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(services.ServiceEntriesCSV(entries)))
}

// ExportServiceEntriesXLSX streams the filtered entries as a spreadsheet
func ExportServiceEntriesXLSX(c *gin.Context) {
	entries, locationFilter, rangeFilter, ok := serviceEntriesForExport(c)
	if !ok {
		return
	}

	data, err := services.ServiceEntriesXLSX(entries)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate spreadsheet")
		return
	}

	filename := services.ServiceEntriesCSVFilename(locationFilter, rangeFilter, time.Now())
	filename = filename[:len(filename)-len(".csv")] + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
