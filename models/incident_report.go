package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonInvolved is one party named on an incident report.
type PersonInvolved struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ContactInfo string `json:"contactInfo"`
	Statement   string `json:"statement"`
}

type PersonList []PersonInvolved

func (p PersonList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PersonList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &p)
}

type IncidentReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ReporterUserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ReporterName    string    `gorm:"not null"`

	IncidentDate  time.Time `gorm:"index;not null"`
	IncidentTime  string    `gorm:"not null"`
	Location      string    `gorm:"not null"`
	IncidentType  string    `gorm:"not null"`
	SeverityLevel string    `gorm:"not null"`
	Description   string    `gorm:"type:text;not null"`

	// People involved, one list per category
	Residents PersonList `gorm:"type:jsonb;default:'[]'"`
	Staff     PersonList `gorm:"type:jsonb;default:'[]'"`
	Visitors  PersonList `gorm:"type:jsonb;default:'[]'"`
	Witnesses PersonList `gorm:"type:jsonb;default:'[]'"`

	// Medical response
	MedicalResponseRequired    bool `gorm:"default:false"`
	MedicalResponseDetails     *string
	EmergencyServicesContacted bool `gorm:"default:false"`
	EmergencyServicesDetails   *string

	// Notifications
	FamilyNotified            bool `gorm:"default:false"`
	FamilyNotifiedDetails     *string
	ManagementNotified        bool `gorm:"default:false"`
	ManagementNotifiedDetails *string

	// Regulatory and documentation
	RegulatoryReportRequired bool `gorm:"default:false"`
	RegulatoryAgency         *string
	DocumentationComplete    bool `gorm:"default:false"`
	AttachmentNotes          *string

	Status      string `gorm:"type:varchar(20);default:'draft'"`
	SubmittedAt *time.Time

	// Manager review
	Resolved            *bool
	ActionsTakenOutcome *string `gorm:"type:text"`
	ReviewedAt          *time.Time
	ReviewedByUserID    *uuid.UUID `gorm:"type:uuid"`

	// Raw wizard form state carried between auto-saves while the report is a
	// draft; cleared on submission.
	FormState JSONB `gorm:"type:jsonb;default:'{}'"`

	gorm.Model
}

func (r *IncidentReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
