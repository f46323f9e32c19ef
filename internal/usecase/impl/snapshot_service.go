// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type snapshotService struct {
	profileRepo     repository.ProfileRepository
	trackingRepo    repository.TrackingRepository
	medicationRepo  repository.MedicationRepository
	vaccinationRepo repository.VaccinationRepository
	logger          *slog.Logger
}

// SnapshotServiceParams holds dependencies for SnapshotService, injected by Fx.
type SnapshotServiceParams struct {
	fx.In

	ProfileRepo     repository.ProfileRepository
	TrackingRepo    repository.TrackingRepository
	MedicationRepo  repository.MedicationRepository
	VaccinationRepo repository.VaccinationRepository
	Logger          *slog.Logger
}

// NewSnapshotService creates the snapshot use case.
func NewSnapshotService(params SnapshotServiceParams) usecase.SnapshotUsecase {
	return &snapshotService{
		profileRepo:     params.ProfileRepo,
		trackingRepo:    params.TrackingRepo,
		medicationRepo:  params.MedicationRepo,
		vaccinationRepo: params.VaccinationRepo,
		logger:          params.Logger,
	}
}

func (s *snapshotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetSnapshot implements usecase.SnapshotUsecase.
func (s *snapshotService) GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.UserSnapshot, error) {
	snapshot := &entity.UserSnapshot{
		Medications:  []*entity.Medication{},
		Vaccinations: []*entity.Vaccination{},
	}

	profile, err := s.profileRepo.FindByUser(ctx, userID)
	switch {
	case err == nil:
		snapshot.Profile = profile
	case errors.Is(err, repository.ErrProfileNotFound):
		s.log(ctx).Debug("user has no profile yet", slog.String("user_id", userID.String()))
	default:
		return nil, errors.Wrap(err, "failed to load profile")
	}

	meds, err := s.medicationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load medications")
	}
	if meds != nil {
		snapshot.Medications = meds
	}

	vacs, err := s.vaccinationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vaccinations")
	}
	if vacs != nil {
		snapshot.Vaccinations = vacs
	}

	tracking, err := s.trackingRepo.FindByUser(ctx, userID)
	switch {
	case err == nil:
		snapshot.Tracking = tracking
	case errors.Is(err, repository.ErrTrackingNotFound):
	default:
		return nil, errors.Wrap(err, "failed to load tracking data")
	}

	return snapshot, nil
}
