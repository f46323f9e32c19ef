package handler

import (
	"net/http"
	"testing"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	mockusecase "livewell/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoalHandler_ListRecommendations(t *testing.T) {
	goalUC := mockusecase.NewMockGoalUsecase(t)
	h := NewGoalHandler(goalUC)
	c, rec := newTestContext(t, http.MethodGet, "/api/goal/recommendation/email", "")

	goalUC.EXPECT().ListRecommendations(mock.Anything, testUserID).Return([]*entity.GoalRecommendation{{
		RecommendID: uuid.New(),
		UserID:      testUserID,
		Title:       entity.RecommendationTitle,
		StepsTarget: 8000,
	}}, nil)

	require.NoError(t, h.ListRecommendations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"steps_target":8000`)
}

func TestGoalHandler_SetAlreadySet(t *testing.T) {
	recommendID := uuid.New()

	tests := []struct {
		name       string
		param      string
		body       string
		setup      func(goalUC *mockusecase.MockGoalUsecase)
		wantStatus int
	}{
		{
			name:  "adopted",
			param: recommendID.String(),
			body:  `{"already_set":true}`,
			setup: func(goalUC *mockusecase.MockGoalUsecase) {
				goalUC.EXPECT().SetAlreadySet(mock.Anything, testUserID, recommendID, true).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "explicit false is accepted",
			param: recommendID.String(),
			body:  `{"already_set":false}`,
			setup: func(goalUC *mockusecase.MockGoalUsecase) {
				goalUC.EXPECT().SetAlreadySet(mock.Anything, testUserID, recommendID, false).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing flag",
			param:      recommendID.String(),
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed id",
			param:      "not-a-uuid",
			body:       `{"already_set":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "someone else's recommendation",
			param: recommendID.String(),
			body:  `{"already_set":true}`,
			setup: func(goalUC *mockusecase.MockGoalUsecase) {
				goalUC.EXPECT().SetAlreadySet(mock.Anything, testUserID, recommendID, true).
					Return(domainerrors.ErrRecommendationNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goalUC := mockusecase.NewMockGoalUsecase(t)
			if tt.setup != nil {
				tt.setup(goalUC)
			}
			h := NewGoalHandler(goalUC)

			c, rec := newTestContext(t, http.MethodPut, "/api/goal/recommendation/google/"+tt.param, tt.body)
			c.SetParamNames("recommend_id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.SetAlreadySet(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
