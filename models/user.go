package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	Role           string    `gorm:"type:varchar(20);not null"` // 'director' or 'staff'
	OrganizationID uuid.UUID `gorm:"type:uuid;index;not null"`

	ProgramName    string `gorm:"not null"`
	ProgramAddress string

	SurveyReminders       bool `gorm:"default:true"`
	IncidentAlerts        bool `gorm:"default:true"`
	SMSNotifications      bool `gorm:"default:false"`
	WhatsAppNotifications bool `gorm:"default:false"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for wizard form state and other schemaless columns
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
