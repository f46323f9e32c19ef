// Package scheduler runs the weekly recommendation jobs on their cron slots.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"livewell/config"
	"livewell/internal/delivery"
	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/domain/lifecycle"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	jobGenerate = "generate"
	jobSend     = "send"
)

type scheduler struct {
	cron             *cron.Cron
	recommendationUC usecase.RecommendationUsecase
	enabled          bool
	logger           *slog.Logger

	// jobCtx is cancelled when running jobs outlive the stop timeout.
	jobCtx    context.Context
	cancelJob context.CancelFunc
	stopped   chan struct{}
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	RecommendationUC usecase.RecommendationUsecase
}

// NewScheduler registers the generate and send entries. A bad cron spec or time zone
// fails startup.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	recCfg := params.Cfg.Recommendation

	location, err := time.LoadLocation(recCfg.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid recommendation time zone %q", recCfg.TimeZone)
	}

	cronLogger := newCronLogger(params.Logger)
	jobCtx, cancelJob := context.WithCancel(context.Background())

	s := &scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		recommendationUC: params.RecommendationUC,
		enabled:          recCfg.Enabled,
		logger:           params.Logger,
		jobCtx:           jobCtx,
		cancelJob:        cancelJob,
		stopped:          make(chan struct{}),
	}

	if s.enabled {
		if _, err := s.cron.AddFunc(recCfg.GenerateCron, s.job(jobGenerate, s.generate)); err != nil {
			cancelJob()

			return nil, errors.Wrapf(err, "invalid generate cron %q", recCfg.GenerateCron)
		}

		if _, err := s.cron.AddFunc(recCfg.SendCron, s.job(jobSend, s.send)); err != nil {
			cancelJob()

			return nil, errors.Wrapf(err, "invalid send cron %q", recCfg.SendCron)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("[Scheduler] recommendation jobs disabled")

		return nil
	}

	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("[Scheduler] job scheduled", slog.Time("next_run", entry.Next))
	}

	<-s.stopped

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	defer s.cancelJob()
	defer close(s.stopped)

	s.logger.Info("[Scheduler] stopping")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-waitCtx.Done():
		s.logger.Warn("[Scheduler] running job did not finish before shutdown")

		return nil
	}
}

// job wraps run with a job-scoped logger and error logging.
func (s *scheduler) job(name string, run func(ctx context.Context) error) func() {
	return func() {
		runID := uuid.New().String()
		logger := s.logger.With(slog.String("job", name), slog.String("request_id", runID))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(s.jobCtx, runID), logger)

		start := time.Now()
		if err := run(ctx); err != nil {
			logger.Error("[Scheduler] job failed", slog.Any("error", err))

			return
		}

		logger.Info("[Scheduler] job finished", slog.Duration("elapsed", time.Since(start)))
	}
}

func (s *scheduler) generate(ctx context.Context) error {
	_, err := s.recommendationUC.Generate(ctx)

	return err
}

func (s *scheduler) send(ctx context.Context) error {
	_, err := s.recommendationUC.Send(ctx)

	return err
}
