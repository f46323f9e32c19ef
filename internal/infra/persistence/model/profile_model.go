package model

import (
	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table filled during onboarding.
type ProfileModel struct {
	UserID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	AgeRange          string    `gorm:"type:varchar(50)"`
	Gender            string    `gorm:"type:varchar(50)"`
	ExerciseFrequency string    `gorm:"type:varchar(100)"`
	ExerciseTypes     []string  `gorm:"type:jsonb;serializer:json"`
	SocialFrequency   string    `gorm:"type:varchar(100)"`
	MainGoals         []string  `gorm:"type:jsonb;serializer:json"`
	TakesMedications  bool
	MedicationDetails string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// TrackingModel is the GORM-specific struct for the 'tracking_data' table.
type TrackingModel struct {
	UserID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CurrentSteps         int       `gorm:"not null;default:0"`
	CurrentWaterIntakeML int       `gorm:"column:current_water_intake_ml;not null;default:0"`
	TargetSteps          int       `gorm:"not null;default:0"`
	TargetWaterIntakeML  int       `gorm:"column:target_water_intake_ml;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingModel) TableName() string {
	return "tracking_data"
}
