package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"livewell/config"
	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/router/handler"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	mockservice "livewell/internal/mocks/service"
	mockusecase "livewell/internal/mocks/usecase"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo     *echo.Echo
	tokenSvc *mockservice.MockTokenService
	recUC    *mockusecase.MockRecommendationUsecase
}

func createTestRouter(t *testing.T, testRoutesEnabled bool) routerFixtures {
	t.Helper()

	fx := routerFixtures{
		echo:     echo.New(),
		tokenSvc: mockservice.NewMockTokenService(t),
		recUC:    mockusecase.NewMockRecommendationUsecase(t),
	}

	r := NewRouter(RouterParams{
		AdminHandler:   handler.NewAdminHandler(fx.recUC),
		TestHandler:    handler.NewTestHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil))),
		Config:         &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutesEnabled}},
	})
	r.RegisterTestRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) post(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestAdminRoutes_RequireFirstPartyToken(t *testing.T) {
	for _, path := range []string{"/api/admin/recommendations/generate", "/api/admin/recommendations/send"} {
		t.Run(path, func(t *testing.T) {
			fx := createTestRouter(t, true)

			rec := fx.post(path, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminRoutes_RejectFederatedToken(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "federated.jwt").
		Return(nil, domainerrors.ErrTokenSignatureInvalid)

	rec := fx.post("/api/admin/recommendations/generate", "Bearer federated.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_GenerateWithFirstPartyToken(t *testing.T) {
	fx := createTestRouter(t, true)
	userID := uuid.New()

	fx.tokenSvc.EXPECT().Verify(entity.SchemeFirstParty, "first.party.jwt").
		Return(&entity.ClaimSet{Subject: userID.String(), Scheme: entity.SchemeFirstParty}, nil)
	fx.recUC.EXPECT().Generate(mock.Anything).
		Return(&usecase.GenerateReport{CycleID: uuid.New(), Users: 1, Staged: 1}, nil)

	rec := fx.post("/api/admin/recommendations/generate", "Bearer first.party.jwt")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes_AbsentWhenTestRoutesDisabled(t *testing.T) {
	fx := createTestRouter(t, false)

	rec := fx.post("/api/admin/recommendations/send", "Bearer first.party.jwt")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
