package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacilityLocationNames is the fixed set of program sites. CSV imports match
// against these case-insensitively and store the canonical casing.
var FacilityLocationNames = []string{
	"Bluefield",
	"Charleston",
	"Huntington",
	"Parkersburg",
}

type FacilityLocation struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name     string    `gorm:"uniqueIndex;not null"`
	IsActive bool      `gorm:"default:true"`

	ServiceEntries []ServiceEntry `gorm:"foreignKey:FacilityLocationID"`
}

func (f *FacilityLocation) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

// CanonicalLocationName matches name against the fixed location set ignoring
// case and surrounding whitespace. Returns the canonical casing on a match.
func CanonicalLocationName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, loc := range FacilityLocationNames {
		if strings.EqualFold(trimmed, loc) {
			return loc, true
		}
	}
	return "", false
}
