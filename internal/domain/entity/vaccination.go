package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination is one entry of a user's vaccination record.
type Vaccination struct {
	VacID        string    `json:"vac_id"`
	UserID       uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DoseDate     string    `json:"dose_date"` // YYYY-MM-DD
	NextDoseDate *string   `json:"next_dose_date"`
	Location     *string   `json:"location"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
