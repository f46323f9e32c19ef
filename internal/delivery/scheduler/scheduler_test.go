package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"livewell/config"
	deliverycontext "livewell/internal/delivery/context"
	mockusecase "livewell/internal/mocks/usecase"
	"livewell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, recCfg config.RecommendationConfig) (SchedulerParams, *mockusecase.MockRecommendationUsecase) {
	t.Helper()

	recUC := mockusecase.NewMockRecommendationUsecase(t)
	cfg := &config.Config{Recommendation: &recCfg}

	return SchedulerParams{
		Lc:               fxtest.NewLifecycle(t),
		Cfg:              cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		RecommendationUC: recUC,
	}, recUC
}

func validConfig() config.RecommendationConfig {
	return config.RecommendationConfig{
		Enabled:      true,
		GenerateCron: "0 6 * * 1",
		SendCron:     "0 8 * * 1",
		TimeZone:     "Asia/Taipei",
	}
}

func TestNewScheduler_RegistersBothJobs(t *testing.T) {
	params, _ := newTestParams(t, validConfig())

	d, err := NewScheduler(params)
	require.NoError(t, err)

	s := d.(*scheduler)
	assert.Len(t, s.cron.Entries(), 2)
	assert.Equal(t, "Asia/Taipei", s.cron.Location().String())
}

func TestNewScheduler_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.RecommendationConfig)
		errMsg string
	}{
		{
			name:   "bad generate cron",
			mutate: func(c *config.RecommendationConfig) { c.GenerateCron = "every monday" },
			errMsg: "invalid generate cron",
		},
		{
			name:   "bad send cron",
			mutate: func(c *config.RecommendationConfig) { c.SendCron = "61 * * * *" },
			errMsg: "invalid send cron",
		},
		{
			name:   "bad time zone",
			mutate: func(c *config.RecommendationConfig) { c.TimeZone = "Mars/Olympus" },
			errMsg: "invalid recommendation time zone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recCfg := validConfig()
			tt.mutate(&recCfg)
			params, _ := newTestParams(t, recCfg)

			_, err := NewScheduler(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewScheduler_DisabledSkipsEntries(t *testing.T) {
	recCfg := validConfig()
	recCfg.Enabled = false
	recCfg.GenerateCron = "not parsed when disabled"
	params, _ := newTestParams(t, recCfg)

	d, err := NewScheduler(params)
	require.NoError(t, err)
	assert.Empty(t, d.(*scheduler).cron.Entries())
	assert.NoError(t, d.Serve(context.Background()))
}

func TestScheduler_JobRunsUsecaseWithScopedLogger(t *testing.T) {
	params, recUC := newTestParams(t, validConfig())

	d, err := NewScheduler(params)
	require.NoError(t, err)
	s := d.(*scheduler)

	recUC.EXPECT().Generate(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.GenerateReport, error) {
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
			assert.NotEmpty(t, deliverycontext.RequestIDFrom(ctx))

			return &usecase.GenerateReport{Users: 1, Staged: 1}, nil
		}).Once()
	recUC.EXPECT().Send(mock.Anything).Return(nil, errors.New("staging unavailable")).Once()

	s.job(jobGenerate, s.generate)()
	s.job(jobSend, s.send)()
}

func TestScheduler_ServeReturnsAfterStop(t *testing.T) {
	params, _ := newTestParams(t, validConfig())

	d, err := NewScheduler(params)
	require.NoError(t, err)
	s := d.(*scheduler)

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	require.NoError(t, s.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
	assert.ErrorIs(t, s.jobCtx.Err(), context.Canceled)
}
