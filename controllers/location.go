// controllers/location.go
package controllers

import (
	"net/http"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/gin-gonic/gin"
)

// GetLocations returns the fixed facility location set
func GetLocations(c *gin.Context) {
	var locations []models.FacilityLocation
	if err := config.DB.Where("is_active = true").Order("name ASC").Find(&locations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}
