package main

import (
	"context"
	"log/slog"
	"os"

	"livewell/config"
	"livewell/internal/delivery"
	"livewell/internal/delivery/api"
	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/router/handler"
	"livewell/internal/delivery/scheduler"
	"livewell/internal/domain/repository"
	"livewell/internal/infra/auth"
	"livewell/internal/infra/auth/google"
	"livewell/internal/infra/llm"
	logs "livewell/internal/infra/log"
	"livewell/internal/infra/notification"
	"livewell/internal/infra/persistence/memory"
	"livewell/internal/infra/persistence/postgres"
	"livewell/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewMedicationRepository,
			postgres.NewVaccinationRepository,
			postgres.NewProfileRepository,
			postgres.NewTrackingRepository,
			postgres.NewUserDirectory,
			postgres.NewDeviceRepository,
			postgres.NewRecommendationRepository,
			newRecommendationStaging,
		),
	)
}

// newRecommendationStaging picks where generated recommendations wait for the send job.
func newRecommendationStaging(cfg *config.Config, db *gorm.DB, logger *slog.Logger) (repository.RecommendationStaging, error) {
	switch cfg.Recommendation.Staging {
	case config.StagingMemory:
		logger.Info("Recommendation staging kept in memory, a restart between jobs drops the staged set")

		return memory.NewRecommendationStaging(), nil
	case config.StagingPostgres:
		return postgres.NewRecommendationStaging(db), nil
	default:
		return nil, errors.Errorf("unknown recommendation staging %q", cfg.Recommendation.Staging)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenService,
			google.NewAuthService,
			notification.NewFirebaseService,
			llm.NewGeminiModel,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSnapshotService,
			impl.NewChatService,
			impl.NewDeviceService,
			impl.NewGoalService,
			impl.NewAuthService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewChatHandler,
			handler.NewDeviceHandler,
			handler.NewGoalHandler,
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
