package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is the push token registered for a user. A user has at most one.
type DeviceToken struct {
	UserID    uuid.UUID `json:"id"`           // The ID of the user who owns this device.
	Token     string    `json:"device_token"` // Firebase Cloud Messaging token for push notifications.
	Platform  string    `json:"platform"`     // Device platform (ios, android).
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
