package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies what a notification is about.
type NotificationType string

const (
	NotificationAmbulanceRequest      NotificationType = "AMBULANCE_REQUEST"
	NotificationEmergencyContactAlert NotificationType = "EMERGENCY_CONTACT_ALERT"
	NotificationStatusUpdate          NotificationType = "STATUS_UPDATE"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationAmbulanceRequest, NotificationEmergencyContactAlert, NotificationStatusUpdate:
		return true
	default:
		return false
	}
}

// RecipientType identifies who a notification is addressed to.
type RecipientType string

const (
	RecipientHospital         RecipientType = "HOSPITAL"
	RecipientUser             RecipientType = "USER"
	RecipientEmergencyContact RecipientType = "EMERGENCY_CONTACT"
)

// IsValid checks if the RecipientType is a valid value.
func (t RecipientType) IsValid() bool {
	switch t {
	case RecipientHospital, RecipientUser, RecipientEmergencyContact:
		return true
	default:
		return false
	}
}

// DeliveryStatus tracks a notification through downstream delivery.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliverySent      DeliveryStatus = "SENT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryRead      DeliveryStatus = "READ"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliverySent, DeliveryDelivered, DeliveryRead, DeliveryFailed:
		return true
	default:
		return false
	}
}

// Notification is a durable record of an outbound message tied to an
// emergency. Rows are created PENDING; the dispatch worker moves them to
// SENT or FAILED after the push attempt, and recipients move them to
// READ when opened.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	EmergencyID uuid.UUID        `json:"emergency_id"`
	Type        NotificationType `json:"type"`

	// Exactly one recipient reference is populated per recipient type:
	// RecipientID for HOSPITAL and USER, RecipientPhone for
	// EMERGENCY_CONTACT.
	RecipientType  RecipientType `json:"recipient_type"`
	RecipientID    *uuid.UUID    `json:"recipient_id,omitempty"`
	RecipientPhone string        `json:"recipient_phone,omitempty"`

	Title   string `json:"title"`
	Message string `json:"message"`

	Status DeliveryStatus `json:"status"`
	SentAt *time.Time     `json:"sent_at,omitempty"`
	ReadAt *time.Time     `json:"read_at,omitempty"` // Set when the recipient opens the notification.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRead reports whether the recipient has opened the notification.
func (n *Notification) IsRead() bool {
	return n.Status == DeliveryRead
}
