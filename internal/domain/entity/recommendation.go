package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification constants for weekly goal recommendations.
const (
	RecommendationTitle       = "Your Weekly Health Goals"
	RecommendationType        = "goal_recommendation"
	RecommendationClickAction = "FLUTTER_NOTIFICATION_CLICK"
)

// Recommendation is one generated weekly goal waiting to be sent.
// At most one exists per user per generation cycle.
type Recommendation struct {
	UserID              uuid.UUID `json:"user_id"`
	DeviceToken         string    `json:"device_token"`
	TargetSteps         int       `json:"target_steps"`
	TargetWaterIntakeML int       `json:"target_water_intake_ml"`
	Description         string    `json:"description"`
	CycleID             uuid.UUID `json:"cycle_id"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// GoalRecommendation is the durable history row written after a recommendation is sent.
type GoalRecommendation struct {
	RecommendID         uuid.UUID `json:"recommend_id"`
	UserID              uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Type                string    `json:"type"`
	StepsTarget         int       `json:"steps_target"`
	WaterIntakeMLTarget int       `json:"water_intake_ml_target"`
	Description         string    `json:"description"`
	AlreadySet          bool      `json:"already_set"`
	CreatedAt           time.Time `json:"created_at"`
}
