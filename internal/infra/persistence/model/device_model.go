package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'fcm_tokens' table.
// The user id is the primary key, so a user holds one token at most.
type DeviceTokenModel struct {
	UserID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	DeviceToken string    `gorm:"type:varchar(512);not null"`
	Platform    string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "fcm_tokens"
}
