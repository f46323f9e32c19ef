package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice stores the token for the user, replacing the previous one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.DeviceToken, error) {
	now := s.now()
	device := &entity.DeviceToken{
		UserID:    userID,
		Token:     deviceInfo.DeviceToken,
		Platform:  deviceInfo.Platform,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device token")
	}

	s.log(ctx).Info("device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", device.Platform))

	return device, nil
}

// UnregisterDevice removes the user's token
func (s *deviceService) UnregisterDevice(ctx context.Context, userID uuid.UUID) error {
	if err := s.deviceRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}
