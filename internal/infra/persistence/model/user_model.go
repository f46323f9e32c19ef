package model

import (
	"github.com/google/uuid"
)

// AuthUserModel maps the identity provider's 'auth.users' table. It is read-only here.
type AuthUserModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (AuthUserModel) TableName() string {
	return "auth.users"
}
