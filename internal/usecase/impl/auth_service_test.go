package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/domain/service"
	mockRepo "livewell/internal/mocks/repository"
	mockSvc "livewell/internal/mocks/service"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service       usecase.AuthUsecase
	googleAuth    *mockSvc.MockOAuthAuthService
	tokenService  *mockSvc.MockTokenService
	userDirectory *mockRepo.MockUserDirectory
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	googleAuth := mockSvc.NewMockOAuthAuthService(t)
	tokenService := mockSvc.NewMockTokenService(t)
	userDirectory := mockRepo.NewMockUserDirectory(t)

	service := NewAuthService(AuthServiceParams{
		GoogleAuthService: googleAuth,
		TokenService:      tokenService,
		UserDirectory:     userDirectory,
		Logger:            newDiscardLogger(),
	})

	return authServiceFixtures{
		service:       service,
		googleAuth:    googleAuth,
		tokenService:  tokenService,
		userDirectory: userDirectory,
	}
}

func TestAuthService_ExchangeGoogleToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{Subject: "sub", Email: "User@Example.com", EmailVerified: true}, nil)
	fx.userDirectory.EXPECT().FindByEmail(ctx, "User@Example.com").
		Return(&repository.UserAccount{ID: userID, Email: "user@example.com"}, nil)
	fx.tokenService.EXPECT().IssueFirstParty(userID, "user@example.com").
		Return("signed-token", expiresAt, nil)

	out, err := fx.service.ExchangeGoogleToken(ctx, "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, userID, out.UserID)
}

func TestAuthService_ExchangeGoogleToken_InvalidIDToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrOAuthTokenInvalid)

	out, err := fx.service.ExchangeGoogleToken(ctx, "bad")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_ExchangeGoogleToken_UnknownAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{Email: "new@example.com", EmailVerified: true}, nil)
	fx.userDirectory.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.ExchangeGoogleToken(ctx, "google-id-token")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
