package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/validator"
	"livewell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testUserID = uuid.MustParse("5f0c2b1e-8d4a-4c3b-9a7e-1f2d3c4b5a69")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClaims() *entity.ClaimSet {
	return &entity.ClaimSet{
		Subject: testUserID.String(),
		Email:   "mei@example.com",
		Role:    entity.RoleAuthenticated,
		Scheme:  entity.SchemeFirstParty,
	}
}

// newTestContext builds an echo context as the auth middleware would leave it.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	middleware.SetIdentity(c, testClaims(), testUserID)

	return c, rec
}

// newAnonymousContext builds an echo context without identity.
func newAnonymousContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}
