package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := uuid.Parse(GetRequestID(c))
	assert.NoError(t, err, "missing id falls back to a fresh uuid")

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
}

func TestScopedValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestIDFrom(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("job", "send"))
	ctx = WithLogger(WithRequestID(ctx, "run-1"), scoped)

	assert.Equal(t, "run-1", RequestIDFrom(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
