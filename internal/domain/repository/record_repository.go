// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for record persistence.
var (
	// ErrMedicationNotFound is returned when no medication matches the user and id.
	ErrMedicationNotFound = errors.New("medication not found")
	// ErrVaccinationNotFound is returned when no vaccination matches the user and id.
	ErrVaccinationNotFound = errors.New("vaccination not found")
	// ErrProfileNotFound is returned when the user has not completed onboarding.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrTrackingNotFound is returned when the user has no tracking row yet.
	ErrTrackingNotFound = errors.New("tracking data not found")
)

// MedicationRepository defines the record-store verbs for medications.
// Every operation is scoped to the owning user.
type MedicationRepository interface {
	// FindByUser lists all medications of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error)

	// FindByUserAndID returns one medication or ErrMedicationNotFound.
	FindByUserAndID(ctx context.Context, userID uuid.UUID, medID string) (*entity.Medication, error)

	// Create persists a new medication and fills its generated id.
	Create(ctx context.Context, med *entity.Medication) error

	// Update replaces the stored fields of an existing medication.
	Update(ctx context.Context, userID uuid.UUID, medID string, med *entity.Medication) error

	// Delete removes a medication.
	Delete(ctx context.Context, userID uuid.UUID, medID string) error
}

// VaccinationRepository defines the record-store verbs for vaccinations.
type VaccinationRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vaccination, error)
	FindByUserAndID(ctx context.Context, userID uuid.UUID, vacID string) (*entity.Vaccination, error)
	Create(ctx context.Context, vac *entity.Vaccination) error
	Update(ctx context.Context, userID uuid.UUID, vacID string, vac *entity.Vaccination) error
	Delete(ctx context.Context, userID uuid.UUID, vacID string) error
}

// ProfileRepository reads onboarding profiles.
type ProfileRepository interface {
	// FindByUser returns the profile or ErrProfileNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}

// TrackingRepository reads activity tracking rows.
type TrackingRepository interface {
	// FindByUser returns the tracking row or ErrTrackingNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.TrackingData, error)
}
