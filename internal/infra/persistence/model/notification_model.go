package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It is the durable record of an outbound message tied to an emergency.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmergencyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:text;not null"`

	RecipientType  string     `gorm:"type:text;not null;index:idx_notifications_recipient"`
	RecipientID    *uuid.UUID `gorm:"type:uuid;index:idx_notifications_recipient"`
	RecipientPhone string     `gorm:"type:text"`

	Title   string `gorm:"type:text;not null"`
	Message string `gorm:"type:text;not null"`

	Status string     `gorm:"type:text;not null;default:'PENDING'"`
	SentAt *time.Time
	ReadAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
