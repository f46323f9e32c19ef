package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/domain/service"
	"livewell/internal/infra/persistence/memory"
	mockRepo "livewell/internal/mocks/repository"
	mockSvc "livewell/internal/mocks/service"
	mockUsecase "livewell/internal/mocks/usecase"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const weeklyGoalJSON = `{"Weekly Goal": {"target_water_intake_ml": "1000", "target_steps": "7000", "description": "Drink more water you have taken flu shot."}}`

type recommendationServiceFixtures struct {
	service   *recommendationService
	users     *mockRepo.MockUserDirectory
	devices   *mockRepo.MockDeviceRepository
	history   *mockRepo.MockRecommendationRepository
	staging   repository.RecommendationStaging
	snapshots *mockUsecase.MockSnapshotUsecase
	model     *mockSvc.MockLanguageModel
	notifier  *mockSvc.MockNotificationService
	now       time.Time
}

func createTestRecommendationService(t *testing.T, staging repository.RecommendationStaging) recommendationServiceFixtures {
	if staging == nil {
		staging = memory.NewRecommendationStaging()
	}

	fx := recommendationServiceFixtures{
		users:     mockRepo.NewMockUserDirectory(t),
		devices:   mockRepo.NewMockDeviceRepository(t),
		history:   mockRepo.NewMockRecommendationRepository(t),
		staging:   staging,
		snapshots: mockUsecase.NewMockSnapshotUsecase(t),
		model:     mockSvc.NewMockLanguageModel(t),
		notifier:  mockSvc.NewMockNotificationService(t),
		now:       time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC),
	}

	fx.service = NewRecommendationService(RecommendationServiceParams{
		Users:     fx.users,
		Devices:   fx.devices,
		History:   fx.history,
		Staging:   fx.staging,
		Snapshots: fx.snapshots,
		Model:     fx.model,
		Notifier:  fx.notifier,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*recommendationService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func (fx recommendationServiceFixtures) expectDevice(userID uuid.UUID, token string) {
	fx.devices.EXPECT().FindByUser(mock.Anything, userID).
		Return(&entity.DeviceToken{UserID: userID, Token: token, Platform: "android"}, nil)
}

func (fx recommendationServiceFixtures) expectSnapshot(userID uuid.UUID) {
	fx.snapshots.EXPECT().GetSnapshot(mock.Anything, userID).
		Return(&entity.UserSnapshot{Profile: &entity.Profile{UserID: userID, MainGoals: []string{"hydration"}}}, nil)
}

func TestRecommendationService_GenerateThenSend(t *testing.T) {
	fx := createTestRecommendationService(t, nil)
	ctx := context.Background()
	withToken1, tokenless, withToken2 := uuid.New(), uuid.New(), uuid.New()

	fx.users.EXPECT().ListUserIDs(mock.Anything).Return([]uuid.UUID{withToken1, tokenless, withToken2}, nil)
	fx.expectDevice(withToken1, "token-1")
	fx.expectDevice(withToken2, "token-2")
	fx.devices.EXPECT().FindByUser(mock.Anything, tokenless).Return(nil, repository.ErrDeviceNotFound)
	fx.expectSnapshot(withToken1)
	fx.expectSnapshot(withToken2)

	fx.model.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(req *service.GenerateRequest) bool {
			return req.ResponseMIMEType == "application/json" &&
				req.MaxOutputTokens == 2048 &&
				len(req.Tools) == 0
		})).
		Return(&service.GenerateResponse{Text: weeklyGoalJSON}, nil).
		Times(2)

	genReport, err := fx.service.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, genReport.Users)
	assert.Equal(t, 2, genReport.Staged)
	assert.Equal(t, 1, genReport.Skipped)
	assert.Equal(t, 0, genReport.Failed)

	payload := mock.MatchedBy(func(data map[string]string) bool {
		return data["title"] == "Your Weekly Health Goals" &&
			data["type"] == "goal_recommendation" &&
			data["target_steps"] == "7000" &&
			data["target_water_intake_ml"] == "1000" &&
			data["click_action"] == "FLUTTER_NOTIFICATION_CLICK"
	})
	fx.notifier.EXPECT().SendData(mock.Anything, "token-1", payload).Return(nil).Once()
	fx.notifier.EXPECT().SendData(mock.Anything, "token-2", payload).Return(nil).Once()

	var persisted []uuid.UUID
	fx.history.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.GoalRecommendation")).
		RunAndReturn(func(_ context.Context, rec *entity.GoalRecommendation) error {
			assert.Equal(t, 7000, rec.StepsTarget)
			assert.Equal(t, 1000, rec.WaterIntakeMLTarget)
			assert.False(t, rec.AlreadySet)
			assert.Equal(t, fx.now, rec.CreatedAt)
			persisted = append(persisted, rec.UserID)

			return nil
		}).
		Times(2)

	sendReport, err := fx.service.Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sendReport.Sent)
	assert.Equal(t, 2, sendReport.Persisted)
	assert.Equal(t, 0, sendReport.Failed)
	assert.ElementsMatch(t, []uuid.UUID{withToken1, withToken2}, persisted)

	// claimed entries are gone; a second send is a no-op
	again, err := fx.service.Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Sent)
}

func TestRecommendationService_Generate_IsolatesUserFailures(t *testing.T) {
	fx := createTestRecommendationService(t, nil)
	ctx := context.Background()
	failing, healthy, badJSON, noReason := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	fx.users.EXPECT().ListUserIDs(mock.Anything).Return([]uuid.UUID{failing, healthy, badJSON, noReason}, nil)
	for _, id := range []uuid.UUID{failing, healthy, badJSON, noReason} {
		fx.expectDevice(id, "token-"+id.String())
		fx.expectSnapshot(id)
	}

	fx.model.EXPECT().
		Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *service.GenerateRequest) (*service.GenerateResponse, error) {
			switch {
			case containsUser(req, failing):
				return nil, errors.New("deadline exceeded")
			case containsUser(req, badJSON):
				return &service.GenerateResponse{Text: "Walk more!"}, nil
			case containsUser(req, noReason):
				return &service.GenerateResponse{
					Text: `{"Weekly Goal": {"target_water_intake_ml": "1000", "target_steps": "7000", "description": ""}}`,
				}, nil
			default:
				return &service.GenerateResponse{Text: weeklyGoalJSON}, nil
			}
		}).
		Times(4)

	report, err := fx.service.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Staged)
	assert.Equal(t, 3, report.Failed)

	recs, err := fx.staging.ClaimAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, healthy, recs[0].UserID)
	assert.Equal(t, report.CycleID, recs[0].CycleID)
	assert.Equal(t, fx.now, recs[0].GeneratedAt)
}

func containsUser(req *service.GenerateRequest, userID uuid.UUID) bool {
	return strings.Contains(req.SystemInstruction, userID.String())
}

func TestRecommendationService_Generate_ReplacesPreviousCycle(t *testing.T) {
	fx := createTestRecommendationService(t, nil)
	ctx := context.Background()

	require.NoError(t, fx.staging.ReplaceAll(ctx, []*entity.Recommendation{{UserID: uuid.New(), DeviceToken: "stale"}}))
	fx.users.EXPECT().ListUserIDs(mock.Anything).Return([]uuid.UUID{}, nil)

	report, err := fx.service.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Staged)

	leftover, err := fx.staging.ClaimAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, leftover)
}

func TestRecommendationService_Generate_DirectoryFailure(t *testing.T) {
	staging := mockRepo.NewMockRecommendationStaging(t)
	fx := createTestRecommendationService(t, staging)

	fx.users.EXPECT().ListUserIDs(mock.Anything).Return(nil, errors.New("auth schema unavailable"))

	report, err := fx.service.Generate(context.Background())
	assert.Nil(t, report)
	assert.True(t, domainerrors.IsUpstreamFailure(err))
}

func TestRecommendationService_Send_CountsFailures(t *testing.T) {
	staging := mockRepo.NewMockRecommendationStaging(t)
	fx := createTestRecommendationService(t, staging)
	ctx := context.Background()

	unregistered := &entity.Recommendation{UserID: uuid.New(), DeviceToken: "dead", TargetSteps: 6000, TargetWaterIntakeML: 1500}
	unpersisted := &entity.Recommendation{UserID: uuid.New(), DeviceToken: "t2", TargetSteps: 6000, TargetWaterIntakeML: 1500}
	delivered := &entity.Recommendation{UserID: uuid.New(), DeviceToken: "t3", TargetSteps: 6000, TargetWaterIntakeML: 1500}

	staging.EXPECT().ClaimAll(mock.Anything).Return([]*entity.Recommendation{unregistered, unpersisted, delivered}, nil)

	fx.notifier.EXPECT().SendData(mock.Anything, "dead", mock.Anything).
		Return(errors.Wrap(service.ErrInvalidDeviceToken, "registration-token-not-registered"))
	fx.expectDevice(unregistered.UserID, "dead")
	fx.devices.EXPECT().Delete(mock.Anything, unregistered.UserID).Return(nil)

	fx.notifier.EXPECT().SendData(mock.Anything, "t2", mock.Anything).Return(nil)
	fx.history.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(rec *entity.GoalRecommendation) bool { return rec.UserID == unpersisted.UserID })).
		Return(errors.New("insert failed"))

	fx.notifier.EXPECT().SendData(mock.Anything, "t3", mock.Anything).Return(nil)
	fx.history.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(rec *entity.GoalRecommendation) bool { return rec.UserID == delivered.UserID })).
		Return(nil)

	report, err := fx.service.Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Persisted)
}

func TestRecommendationService_Send_KeepsReRegisteredToken(t *testing.T) {
	staging := mockRepo.NewMockRecommendationStaging(t)
	fx := createTestRecommendationService(t, staging)
	rec := &entity.Recommendation{UserID: uuid.New(), DeviceToken: "old", TargetSteps: 1, TargetWaterIntakeML: 1}

	staging.EXPECT().ClaimAll(mock.Anything).Return([]*entity.Recommendation{rec}, nil)
	fx.notifier.EXPECT().SendData(mock.Anything, "old", mock.Anything).Return(service.ErrInvalidDeviceToken)
	fx.expectDevice(rec.UserID, "fresh")

	report, err := fx.service.Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func TestRecommendationService_SendWaitsForGenerate(t *testing.T) {
	fx := createTestRecommendationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	started := make(chan struct{})
	release := make(chan struct{})

	fx.users.EXPECT().ListUserIDs(mock.Anything).Return([]uuid.UUID{userID}, nil)
	fx.expectDevice(userID, "token")
	fx.expectSnapshot(userID)
	fx.model.EXPECT().
		Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.GenerateRequest) (*service.GenerateResponse, error) {
			close(started)
			<-release

			return &service.GenerateResponse{Text: weeklyGoalJSON}, nil
		})
	fx.notifier.EXPECT().SendData(mock.Anything, "token", mock.Anything).Return(nil)
	fx.history.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	genDone := make(chan error, 1)
	go func() {
		_, err := fx.service.Generate(ctx)
		genDone <- err
	}()
	<-started

	type sendResult struct {
		report *usecase.SendReport
		err    error
	}
	sendDone := make(chan sendResult, 1)
	go func() {
		report, err := fx.service.Send(ctx)
		sendDone <- sendResult{report: report, err: err}
	}()

	select {
	case <-sendDone:
		t.Fatal("send finished while generation was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-genDone)

	result := <-sendDone
	require.NoError(t, result.err)
	assert.Equal(t, 1, result.report.Sent)
}
