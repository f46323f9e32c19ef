package usecase

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceToken string `json:"device_token" validate:"required,max=512"`
	Platform    string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for device token management use cases
type DeviceUsecase interface {
	// RegisterDevice stores the user's push token, replacing any earlier one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.DeviceToken, error)

	// UnregisterDevice removes the user's push token
	UnregisterDevice(ctx context.Context, userID uuid.UUID) error
}
