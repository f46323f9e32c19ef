package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	mockservice "livewell/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockservice.MockTokenService) {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)

	return NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil))), tokenSvc
}

// serve runs Authenticate(scheme) in front of a handler that records what it saw.
func serve(t *testing.T, m *AuthMiddleware, scheme entity.Scheme, authHeader string) (*httptest.ResponseRecorder, *entity.ClaimSet, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/goal/recommendation/"+string(scheme), nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		seen    *entity.ClaimSet
		reached bool
	)
	next := func(c echo.Context) error {
		reached = true
		seen, _ = GetClaims(c)

		return c.NoContent(http.StatusNoContent)
	}

	require.NoError(t, m.Authenticate(scheme)(next)(c))

	return rec, seen, reached
}

func TestAuthenticate_AcceptsValidToken(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	userID := uuid.New()
	claims := &entity.ClaimSet{Subject: userID.String(), Email: "mei@example.com", Scheme: entity.SchemeFederated}

	tokenSvc.EXPECT().Verify(entity.SchemeFederated, "signed.jwt.value").Return(claims, nil)

	rec, seen, reached := serve(t, m, entity.SchemeFederated, "Bearer signed.jwt.value")

	assert.True(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, claims, seen)
}

func TestAuthenticate_StoresUserID(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	userID := uuid.New()

	tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "tok").
		Return(&entity.ClaimSet{Subject: userID.String(), Scheme: entity.SchemeFirstParty}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := e.NewContext(req, httptest.NewRecorder())

	var got uuid.UUID
	err := m.Authenticate(entity.SchemeFirstParty)(func(c echo.Context) error {
		got, _ = GetUserID(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(tokenSvc *mockservice.MockTokenService)
		wantCode string
	}{
		{
			name:     "missing header",
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "not a bearer token",
			header:   "Basic dXNlcjpwYXNz",
			wantCode: "INVALID_TOKEN_FORMAT",
		},
		{
			name:   "expired",
			header: "Bearer expired",
			setup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "expired").Return(nil, domainerrors.ErrTokenExpired)
			},
			wantCode: "TOKEN_EXPIRED",
		},
		{
			name:   "signed for the other scheme",
			header: "Bearer federated-token",
			setup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "federated-token").
					Return(nil, domainerrors.ErrTokenSignatureInvalid)
			},
			wantCode: "TOKEN_SIGNATURE_INVALID",
		},
		{
			name:   "subject is not a user id",
			header: "Bearer odd-subject",
			setup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "odd-subject").
					Return(&entity.ClaimSet{Subject: "service-account"}, nil)
			},
			wantCode: "TOKEN_MALFORMED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tokenSvc := createTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, _, reached := serve(t, m, entity.SchemeFirstParty, tt.header)

			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}
