// models/notification.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRecipient struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null"`
	Phone          string    `gorm:"not null"`
	// Which report types this recipient is alerted for: incident, survey
	ReportTypes string `gorm:"type:varchar(50);default:'incident'"`
	IsActive    bool   `gorm:"default:true"`
	gorm.Model
}

func (n *NotificationRecipient) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}

type NotificationLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index;not null"`
	ReportID       uuid.UUID `gorm:"type:uuid;index;not null"`
	ReportType     string    `gorm:"type:varchar(20)"` // incident, survey
	RecipientID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Message        string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage   string    `gorm:"type:text"`
	Channel        string    `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt         time.Time
	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
