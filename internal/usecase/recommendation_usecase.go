package usecase

import (
	"context"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerateReport summarizes one generation run.
type GenerateReport struct {
	CycleID uuid.UUID `json:"cycle_id"`
	Users   int       `json:"users"`
	Staged  int       `json:"staged"`
	Skipped int       `json:"skipped"`
	Failed  int       `json:"failed"`
}

// SendReport summarizes one send run.
type SendReport struct {
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Persisted int `json:"persisted"`
}

// RecommendationUsecase is the weekly goal pipeline. Generate and Send never overlap.
type RecommendationUsecase interface {
	// Generate builds a recommendation for every user with a registered device and
	// replaces the staged set with the result.
	Generate(ctx context.Context) (*GenerateReport, error)

	// Send pushes every staged recommendation and records it in the user's history.
	// Per-user failures are counted, not returned.
	Send(ctx context.Context) (*SendReport, error)
}

// GoalUsecase exposes a user's recommendation history.
type GoalUsecase interface {
	// ListRecommendations returns the user's history, newest first.
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.GoalRecommendation, error)

	// SetAlreadySet records whether the user adopted a recommendation.
	SetAlreadySet(ctx context.Context, userID, recommendID uuid.UUID, alreadySet bool) error
}
