package impl

import (
	"context"
	"testing"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	mockRepo "livewell/internal/mocks/repository"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalServiceFixtures struct {
	service usecase.GoalUsecase
	recRepo *mockRepo.MockRecommendationRepository
}

func createTestGoalService(t *testing.T) goalServiceFixtures {
	recRepo := mockRepo.NewMockRecommendationRepository(t)

	return goalServiceFixtures{
		service: NewGoalService(recRepo),
		recRepo: recRepo,
	}
}

func TestGoalService_ListRecommendations(t *testing.T) {
	fx := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()

	history := []*entity.GoalRecommendation{
		{RecommendID: uuid.New(), UserID: userID, StepsTarget: 8000},
		{RecommendID: uuid.New(), UserID: userID, StepsTarget: 7000},
	}
	fx.recRepo.EXPECT().FindByUser(ctx, userID).Return(history, nil)

	recs, err := fx.service.ListRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, history, recs)
}

func TestGoalService_ListRecommendations_Empty(t *testing.T) {
	fx := createTestGoalService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.recRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)

	recs, err := fx.service.ListRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGoalService_SetAlreadySet(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "updated"},
		{name: "foreign or unknown row", repoErr: repository.ErrRecommendationNotFound, wantErr: domainerrors.ErrRecommendationNotFound},
		{name: "store failure", repoErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGoalService(t)
			ctx := context.Background()
			userID, recID := uuid.New(), uuid.New()

			fx.recRepo.EXPECT().UpdateAlreadySet(ctx, userID, recID, true).Return(tt.repoErr)

			err := fx.service.SetAlreadySet(ctx, userID, recID, true)
			switch {
			case tt.repoErr == nil:
				assert.NoError(t, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.ErrorIs(t, err, tt.repoErr)
			}
		})
	}
}
