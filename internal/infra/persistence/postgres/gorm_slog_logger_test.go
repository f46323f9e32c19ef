package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"livewell/config"
	deliverycontext "livewell/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func medicationQuery() (string, int64) {
	return `SELECT * FROM "medications" WHERE id = 'u1'`, 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: errors.New("connection refused"), want: "GORM query failed"},
		{name: "missing row is quiet", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query outside debug", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), medicationQuery, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "medications")
		})
	}
}

func TestGormSlogLogger_UsesContextLogger(t *testing.T) {
	l, fallback := newBufferedGormLogger(false)

	var scoped bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-7")))

	l.Trace(ctx, time.Now(), medicationQuery, errors.New("deadlock detected"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
}
