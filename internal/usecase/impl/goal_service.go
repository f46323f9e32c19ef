package impl

import (
	"context"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type goalService struct {
	recRepo repository.RecommendationRepository
}

// NewGoalService creates the recommendation history use case.
func NewGoalService(recRepo repository.RecommendationRepository) usecase.GoalUsecase {
	return &goalService{recRepo: recRepo}
}

// ListRecommendations implements usecase.GoalUsecase.
func (s *goalService) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.GoalRecommendation, error) {
	recs, err := s.recRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goal recommendations")
	}

	if recs == nil {
		recs = []*entity.GoalRecommendation{}
	}

	return recs, nil
}

// SetAlreadySet implements usecase.GoalUsecase.
func (s *goalService) SetAlreadySet(ctx context.Context, userID, recommendID uuid.UUID, alreadySet bool) error {
	if err := s.recRepo.UpdateAlreadySet(ctx, userID, recommendID, alreadySet); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return domainerrors.ErrRecommendationNotFound
		}

		return errors.Wrap(err, "failed to update goal recommendation")
	}

	return nil
}
