package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusDraft     = "draft"
	ReportStatusSubmitted = "submitted"
	ReportStatusReviewed  = "reviewed"
)

// MeetingEntry is one scheduled house meeting reported on a weekly survey.
type MeetingEntry struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Name string `json:"name"`
}

type MeetingList []MeetingEntry

func (m MeetingList) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MeetingList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &m)
}

// RecoverySurvey is the director weekly report. Counts are pointers so an
// unanswered question stays NULL while an answered zero is stored as 0.
type RecoverySurvey struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ReporterUserID  uuid.UUID `gorm:"type:uuid;index;not null"`

	ProgramName  string    `gorm:"not null"`
	ReportDate   time.Time `gorm:"index;not null"`
	ReporterName string    `gorm:"not null"`

	// Census by phase
	Phase1Count    *int
	Phase2Count    *int
	Phase3Count    *int
	Phase4Count    *int
	TotalResidents *int

	// Intakes
	NewIntakes    *int
	IntakeDenials *int
	Waitlist      *int

	// Discharges
	Discharges            *int
	VoluntaryDischarges   *int
	InvoluntaryDischarges *int
	ProgramCompletions    *int
	DischargeNotes        *string

	// Program health
	Relapses              *int
	Overdoses             *int
	Hospitalizations      *int
	DrugScreens           *int
	PositiveDrugScreens   *int
	EmployedResidents     *int
	JobSearchResidents    *int
	GEDEnrollments        *int
	ClassAttendance       *int
	VolunteerServiceHours *int
	PeerSupportSessions   *int

	// Narrative
	FacilityIssues     *string `gorm:"type:text"`
	StaffingNeeds      *string `gorm:"type:text"`
	ResidentConcerns   *string `gorm:"type:text"`
	SuccessStories     *string `gorm:"type:text"`
	UpcomingEvents     *string `gorm:"type:text"`
	AdditionalComments *string `gorm:"type:text"`

	// Structured meetings plus the legacy flattened string
	Meetings     MeetingList `gorm:"type:jsonb;default:'[]'"`
	MeetingDates string      `gorm:"type:text"`

	Status      string `gorm:"type:varchar(20);default:'draft'"`
	SubmittedAt *time.Time

	gorm.Model
}

func (s *RecoverySurvey) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
