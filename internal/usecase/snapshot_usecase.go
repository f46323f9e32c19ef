package usecase

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
)

// SnapshotUsecase assembles the consolidated record view used as model context.
type SnapshotUsecase interface {
	// GetSnapshot loads profile, medications, vaccinations and tracking data of the user.
	// A missing profile or tracking row is not an error.
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.UserSnapshot, error)
}
