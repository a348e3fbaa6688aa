package config

import (
	"log"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
)

// SeedFacilityLocations ensures the fixed location set exists.
func SeedFacilityLocations() {
	for _, name := range models.FacilityLocationNames {
		var loc models.FacilityLocation
		result := DB.Where("name = ?", name).FirstOrCreate(&loc, models.FacilityLocation{
			Name:     name,
			IsActive: true,
		})
		if result.Error != nil {
			log.Printf("Failed to seed facility location %s: %v", name, result.Error)
		}
	}
}
