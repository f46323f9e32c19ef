package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicationModel is the GORM-specific struct for the 'medications' table.
type MedicationModel struct {
	MedID         uuid.UUID `gorm:"column:med_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"column:id;type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	DoseValue     int       `gorm:"not null"`
	DoseUnit      string    `gorm:"type:varchar(50);not null"`
	FrequencyType string    `gorm:"type:varchar(100);not null"`
	FrequencyTime string    `gorm:"type:varchar(5);not null"`
	StartDate     string    `gorm:"type:varchar(10);not null"`
	Durations     *int
	Notes         *string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "medications"
}
