package postgres

import (
	"context"

	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
	"livewell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUser returns the onboarding profile of the user.
func (repo *profileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &entity.Profile{
		UserID:            profileM.UserID,
		AgeRange:          profileM.AgeRange,
		Gender:            profileM.Gender,
		ExerciseFrequency: profileM.ExerciseFrequency,
		ExerciseTypes:     profileM.ExerciseTypes,
		SocialFrequency:   profileM.SocialFrequency,
		MainGoals:         profileM.MainGoals,
		TakesMedications:  profileM.TakesMedications,
		MedicationDetails: profileM.MedicationDetails,
	}, nil
}

type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *gorm.DB) repository.TrackingRepository {
	return &trackingRepository{db: db}
}

// FindByUser returns the user's current tracking row.
func (repo *trackingRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.TrackingData, error) {
	var trackingM model.TrackingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&trackingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to find tracking data")
	}

	return &entity.TrackingData{
		UserID:               trackingM.UserID,
		CurrentSteps:         trackingM.CurrentSteps,
		CurrentWaterIntakeML: trackingM.CurrentWaterIntakeML,
		TargetSteps:          trackingM.TargetSteps,
		TargetWaterIntakeML:  trackingM.TargetWaterIntakeML,
	}, nil
}
