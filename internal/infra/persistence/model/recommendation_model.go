package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalRecommendationModel is the GORM-specific struct for the 'goal_recommendations' history table.
type GoalRecommendationModel struct {
	RecommendID         uuid.UUID `gorm:"column:recommend_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID              uuid.UUID `gorm:"column:id;type:uuid;not null;index"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Type                string    `gorm:"type:varchar(50);not null"`
	StepsTarget         int       `gorm:"not null"`
	WaterIntakeMLTarget int       `gorm:"column:water_intake_ml_target;not null"`
	Description         string    `gorm:"type:text"`
	AlreadySet          bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GoalRecommendationModel) TableName() string {
	return "goal_recommendations"
}

// RecommendationStagingModel is the GORM-specific struct for the 'recommendation_staging' table.
// It holds the last generated cycle until the send job claims it.
type RecommendationStagingModel struct {
	UserID              uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	DeviceToken         string    `gorm:"type:varchar(512);not null"`
	TargetSteps         int       `gorm:"not null"`
	TargetWaterIntakeML int       `gorm:"column:target_water_intake_ml;not null"`
	Description         string    `gorm:"type:text"`
	CycleID             uuid.UUID `gorm:"type:uuid;not null;index"`
	GeneratedAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecommendationStagingModel) TableName() string {
	return "recommendation_staging"
}
