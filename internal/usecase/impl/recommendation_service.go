package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"livewell/config"
	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/domain/service"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// errNoDevice marks users that cannot receive a recommendation.
var errNoDevice = errors.New("user has no registered device")

type recommendationService struct {
	users     repository.UserDirectory
	devices   repository.DeviceRepository
	history   repository.RecommendationRepository
	staging   repository.RecommendationStaging
	snapshots usecase.SnapshotUsecase
	model     service.LanguageModel
	notifier  service.NotificationService

	maxConcurrency int
	userTimeout    time.Duration

	// runMu serializes Generate and Send so a send never sees a partial cycle.
	runMu  sync.Mutex
	now    func() time.Time
	logger *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	Users     repository.UserDirectory
	Devices   repository.DeviceRepository
	History   repository.RecommendationRepository
	Staging   repository.RecommendationStaging
	Snapshots usecase.SnapshotUsecase
	Model     service.LanguageModel
	Notifier  service.NotificationService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRecommendationService creates the weekly goal pipeline.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		users:          params.Users,
		devices:        params.Devices,
		history:        params.History,
		staging:        params.Staging,
		snapshots:      params.Snapshots,
		model:          params.Model,
		notifier:       params.Notifier,
		maxConcurrency: params.Config.Recommendation.MaxConcurrency,
		userTimeout:    params.Config.Recommendation.UserTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (s *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Generate implements usecase.RecommendationUsecase.
func (s *recommendationService) Generate(ctx context.Context) (*usecase.GenerateReport, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("user directory", err)
	}

	cycleID := uuid.New()
	generatedAt := s.now()
	logger := s.log(ctx).With(slog.String("cycle_id", cycleID.String()))
	logger.Info("[Recommendation] generating", slog.Int("users", len(userIDs)))

	var (
		group   errgroup.Group
		results = make([]*entity.Recommendation, len(userIDs))
		skipped atomic.Int64
		failed  atomic.Int64
	)
	if s.maxConcurrency > 0 {
		group.SetLimit(s.maxConcurrency)
	}

	for i, userID := range userIDs {
		group.Go(func() error {
			rec, err := s.generateFor(ctx, userID)
			switch {
			case errors.Is(err, errNoDevice):
				skipped.Add(1)
			case err != nil:
				failed.Add(1)
				logger.Warn("[Recommendation] generation failed for user",
					slog.String("user_id", userID.String()),
					slog.Any("error", err))
			default:
				rec.CycleID = cycleID
				rec.GeneratedAt = generatedAt
				results[i] = rec
			}

			// Per-user failures never cancel the rest of the cycle.
			return nil
		})
	}
	_ = group.Wait()

	staged := make([]*entity.Recommendation, 0, len(results))
	for _, rec := range results {
		if rec != nil {
			staged = append(staged, rec)
		}
	}

	if err := s.staging.ReplaceAll(ctx, staged); err != nil {
		return nil, domainerrors.NewUpstreamError("recommendation staging", err)
	}

	report := &usecase.GenerateReport{
		CycleID: cycleID,
		Users:   len(userIDs),
		Staged:  len(staged),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	logger.Info("[Recommendation] generation finished",
		slog.Int("staged", report.Staged),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed))

	return report, nil
}

func (s *recommendationService) generateFor(ctx context.Context, userID uuid.UUID) (*entity.Recommendation, error) {
	if s.userTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.userTimeout)
		defer cancel()
	}

	device, err := s.devices.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errNoDevice
		}

		return nil, errors.Wrap(err, "failed to load device token")
	}

	snapshot, err := s.snapshots.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user data")
	}

	instruction, err := withSnapshot(recommendationPersona, snapshot)
	if err != nil {
		return nil, err
	}

	resp, err := s.model.Generate(ctx, &service.GenerateRequest{
		SystemInstruction: instruction,
		Contents: []service.Content{{
			Role:  service.RoleUser,
			Parts: []service.Part{{Text: recommendationRequest}},
		}},
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  recommendationMaxOutputTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "language model failed")
	}

	goal, err := parseWeeklyGoal(resp.Text)
	if err != nil {
		return nil, err
	}

	return &entity.Recommendation{
		UserID:              userID,
		DeviceToken:         device.Token,
		TargetSteps:         goal.TargetSteps,
		TargetWaterIntakeML: goal.TargetWaterIntakeML,
		Description:         goal.Description,
	}, nil
}

// Send implements usecase.RecommendationUsecase.
func (s *recommendationService) Send(ctx context.Context) (*usecase.SendReport, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	recs, err := s.staging.ClaimAll(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("recommendation staging", err)
	}

	logger := s.log(ctx)
	logger.Info("[Recommendation] sending", slog.Int("staged", len(recs)))

	report := &usecase.SendReport{}
	for _, rec := range recs {
		userLogger := logger.With(slog.String("user_id", rec.UserID.String()))

		if err := s.notifier.SendData(ctx, rec.DeviceToken, notificationData(rec)); err != nil {
			report.Failed++
			userLogger.Warn("[Recommendation] push failed", slog.Any("error", err))
			s.dropInvalidToken(ctx, userLogger, rec, err)

			continue
		}
		report.Sent++

		if err := s.history.Create(ctx, &entity.GoalRecommendation{
			RecommendID:         uuid.New(),
			UserID:              rec.UserID,
			Title:               entity.RecommendationTitle,
			Type:                entity.RecommendationType,
			StepsTarget:         rec.TargetSteps,
			WaterIntakeMLTarget: rec.TargetWaterIntakeML,
			Description:         rec.Description,
			CreatedAt:           s.now(),
		}); err != nil {
			report.Failed++
			userLogger.Error("[Recommendation] failed to record history", slog.Any("error", err))

			continue
		}
		report.Persisted++
	}

	logger.Info("[Recommendation] send finished",
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("persisted", report.Persisted))

	return report, nil
}

// dropInvalidToken forgets a token the push provider rejected, unless the user re-registered meanwhile.
func (s *recommendationService) dropInvalidToken(ctx context.Context, logger *slog.Logger, rec *entity.Recommendation, sendErr error) {
	if !errors.Is(sendErr, service.ErrInvalidDeviceToken) {
		return
	}

	current, err := s.devices.FindByUser(ctx, rec.UserID)
	if err != nil || current.Token != rec.DeviceToken {
		return
	}

	if err := s.devices.Delete(ctx, rec.UserID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		logger.Warn("[Recommendation] failed to drop invalid token", slog.Any("error", err))

		return
	}

	logger.Info("[Recommendation] dropped invalid device token")
}

func notificationData(rec *entity.Recommendation) map[string]string {
	return map[string]string{
		"title":                  entity.RecommendationTitle,
		"type":                   entity.RecommendationType,
		"target_steps":           strconv.Itoa(rec.TargetSteps),
		"target_water_intake_ml": strconv.Itoa(rec.TargetWaterIntakeML),
		"click_action":           entity.RecommendationClickAction,
	}
}
