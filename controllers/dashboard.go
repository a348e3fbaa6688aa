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

// GetDashboard computes the overview, per-location, and per-customer stats
// for the requested date window. Aggregation runs in memory so the capping
// and averaging rules live in one place regardless of storage.
func GetDashboard(c *gin.Context) {
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

	rangeFilter := c.DefaultQuery("range", services.RangeYearToDate)

	var entries []models.ServiceEntry
	if err := config.DB.Where("organization_id = ?", orgUUID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service entries")
		return
	}

	now := time.Now()

	recent := entries
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"range":         rangeFilter,
		"overview":      services.Overview(entries, rangeFilter, now),
		"byLocation":    services.LocationStats(entries, rangeFilter, now),
		"byCustomer":    services.CustomerStats(entries, rangeFilter, now),
		"recentEntries": recent,
	})
}
