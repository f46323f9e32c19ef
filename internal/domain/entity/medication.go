package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one entry of a user's medication list.
type Medication struct {
	MedID         string    `json:"med_id"`
	UserID        uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DoseValue     int       `json:"dose_value"`
	DoseUnit      string    `json:"dose_unit"`
	FrequencyType string    `json:"frequency_type"`
	FrequencyTime string    `json:"frequency_time"` // HH:MM
	StartDate     string    `json:"start_date"`     // YYYY-MM-DD
	Durations     *int      `json:"durations"`      // days, nil means open-ended
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
