package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date       time.Time `gorm:"index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Denormalized snapshot of the customer name at entry time
	CustomerName string `gorm:"not null"`

	FacilityLocationID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Denormalized display name resolved from facility_locations
	Location string `gorm:"not null"`

	NumberOfResidents int     `gorm:"not null"`
	HoursWorked       float64 `gorm:"type:decimal(10,2);not null"`
	// TotalHours = round(HoursWorked * NumberOfResidents), computed once in
	// BeforeCreate. Not independently editable.
	TotalHours float64 `gorm:"type:decimal(10,2);not null"`

	Notes string `gorm:"type:text"`

	gorm.Model
}

func (s *ServiceEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.TotalHours = math.Round(s.HoursWorked * float64(s.NumberOfResidents))
	return
}
