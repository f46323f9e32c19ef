package google

import (
	"context"
	"log/slog"

	"livewell/config"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

// payloadValidator matches idtoken.Validate.
type payloadValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService against Google Sign-In.
type AuthServiceImpl struct {
	clientID string
	validate payloadValidator
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	var clientID string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("invalid issuer: " + payload.Issuer)
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Name:          stringClaim(payload.Claims, "name"),
	}

	if user.Email == "" || !user.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("email not verified")
	}

	s.logger.Info("Google ID token verified",
		slog.String("subject", user.Subject),
		slog.String("email", user.Email))

	return user, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// boolClaim accepts both JSON booleans and the "true" string some tokens carry.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
