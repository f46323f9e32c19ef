package model

import (
	"time"

	"github.com/google/uuid"
)

// VaccinationModel is the GORM-specific struct for the 'vaccinations' table.
type VaccinationModel struct {
	VacID        uuid.UUID `gorm:"column:vac_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"column:id;type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	DoseDate     string    `gorm:"type:varchar(10);not null"`
	NextDoseDate *string   `gorm:"type:varchar(10)"`
	Location     *string   `gorm:"type:varchar(255)"`
	Notes        *string   `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaccinationModel) TableName() string {
	return "vaccinations"
}
