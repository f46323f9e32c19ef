package repository

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecommendationNotFound is returned when a history row does not belong to the user.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// RecommendationRepository persists the history of sent weekly goals.
type RecommendationRepository interface {
	// Create writes one history row.
	Create(ctx context.Context, rec *entity.GoalRecommendation) error

	// FindByUser lists the user's history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GoalRecommendation, error)

	// UpdateAlreadySet flags whether the user adopted the recommendation.
	UpdateAlreadySet(ctx context.Context, userID, recommendID uuid.UUID, alreadySet bool) error
}

// RecommendationStaging holds the generated recommendations between the generate and send jobs.
type RecommendationStaging interface {
	// ReplaceAll atomically swaps the staged set for recs. Entries from earlier cycles are dropped.
	ReplaceAll(ctx context.Context, recs []*entity.Recommendation) error

	// ClaimAll atomically removes and returns every staged entry.
	ClaimAll(ctx context.Context) ([]*entity.Recommendation, error)
}
