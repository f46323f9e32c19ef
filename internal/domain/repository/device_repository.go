package repository

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when the user has no registered device token.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device token persistence.
// A user has at most one registered token.
type DeviceRepository interface {
	// Upsert registers the token for its user, replacing any previous one.
	Upsert(ctx context.Context, device *entity.DeviceToken) error

	// FindByUser returns the user's token or ErrDeviceNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DeviceToken, error)

	// Delete removes the user's token. Returns ErrDeviceNotFound if none was registered.
	Delete(ctx context.Context, userID uuid.UUID) error
}
