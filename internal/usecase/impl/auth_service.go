package impl

import (
	"context"
	"log/slog"

	deliverycontext "livewell/internal/delivery/context"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/domain/service"
	"livewell/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

type authService struct {
	googleAuthService service.OAuthAuthService
	tokenService      service.TokenService
	userDirectory     repository.UserDirectory
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	GoogleAuthService service.OAuthAuthService
	TokenService      service.TokenService
	UserDirectory     repository.UserDirectory
	Logger            *slog.Logger
}

// NewAuthService creates the Google sign-in exchange use case.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		googleAuthService: params.GoogleAuthService,
		tokenService:      params.TokenService,
		userDirectory:     params.UserDirectory,
		logger:            params.Logger,
	}
}

func (s *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ExchangeGoogleToken implements usecase.AuthUsecase.
func (s *authService) ExchangeGoogleToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error) {
	googleUser, err := s.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	account, err := s.userDirectory.FindByEmail(ctx, googleUser.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no account is linked to " + googleUser.Email)
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	token, expiresAt, err := s.tokenService.IssueFirstParty(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	s.log(ctx).Info("google sign-in exchanged", slog.String("user_id", account.ID.String()))

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		UserID:      account.ID,
		Email:       account.Email,
	}, nil
}
