package impl

import (
	"context"
	"testing"
	"time"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	mockRepo "livewell/internal/mocks/repository"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    *deviceService
	deviceRepo *mockRepo.MockDeviceRepository
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger()).(*deviceService)

	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		now:        now,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		DeviceToken: "test-fcm-token",
		Platform:    "ios",
	}

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(d *entity.DeviceToken) bool {
			return d.UserID == userID && d.Token == "test-fcm-token"
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "ios", device.Platform)
	assert.Equal(t, fx.now, device.UpdatedAt)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceToken: "t", Platform: "android"})
	assert.Nil(t, device)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert device token")
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, fx.service.UnregisterDevice(ctx, userID))
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrDeviceNotFound)

	err := fx.service.UnregisterDevice(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
