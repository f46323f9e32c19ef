package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = (*cronLogger)(nil)

func newCronLogger(logger *slog.Logger) *cronLogger {
	return &cronLogger{logger: logger.With(slog.String("component", "cron"))}
}

// Info is only emitted at debug level; cron reports every wake-up through it.
func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
