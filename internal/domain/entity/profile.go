package entity

import "github.com/google/uuid"

// Profile holds the onboarding answers a user gave about themselves.
type Profile struct {
	UserID            uuid.UUID `json:"id"`
	AgeRange          string    `json:"age_range"`
	Gender            string    `json:"gender"`
	ExerciseFrequency string    `json:"exercise_frequency"`
	ExerciseTypes     []string  `json:"exercise_types"`
	SocialFrequency   string    `json:"social_frequency"`
	MainGoals         []string  `json:"main_goals"`
	TakesMedications  bool      `json:"takes_medications"`
	MedicationDetails string    `json:"medication_details"`
}

// TrackingData is the user's current activity progress against their targets.
type TrackingData struct {
	UserID               uuid.UUID `json:"id"`
	CurrentSteps         int       `json:"current_steps"`
	CurrentWaterIntakeML int       `json:"current_water_intake_ml"`
	TargetSteps          int       `json:"target_steps"`
	TargetWaterIntakeML  int       `json:"target_water_intake_ml"`
}

// UserSnapshot is the consolidated view of a user's records handed to the language model.
type UserSnapshot struct {
	Profile      *Profile       `json:"profile"`
	Medications  []*Medication  `json:"medications"`
	Vaccinations []*Vaccination `json:"vaccinations"`
	Tracking     *TrackingData  `json:"tracking_data"`
}
