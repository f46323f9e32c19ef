package middleware

import (
	"log/slog"
	"strings"

	"livewell/internal/delivery/api/response"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyUserID = "userID"
	keyClaims = "claims"

	bearerPrefix = "Bearer "
)

// AuthMiddleware verifies bearer tokens of either signing scheme.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects the request with 401 unless it carries a valid token of scheme.
// On success the claims and the user id are stored on the context.
func (m *AuthMiddleware) Authenticate(scheme entity.Scheme) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
			}

			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
			if tokenString == authHeader {
				return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
			}

			claims, err := m.tokenSvc.Verify(scheme, tokenString)
			if err != nil {
				m.logger.Debug("token rejected",
					slog.String("scheme", string(scheme)),
					slog.Any("error", err))

				return unauthorized(c, err)
			}

			userID, err := claims.UserID()
			if err != nil {
				return response.Unauthorized(c, domainerrors.ErrTokenMalformed.ErrorCode(), "Invalid user ID format in token")
			}

			SetIdentity(c, claims, userID)

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
	}

	return response.Unauthorized(c, domainerrors.ErrAuthentication.ErrorCode(), domainerrors.ErrAuthentication.Message())
}

// SetIdentity stores the verified caller on the context.
func SetIdentity(c echo.Context, claims *entity.ClaimSet, userID uuid.UUID) {
	c.Set(keyUserID, userID)
	c.Set(keyClaims, claims)
}

// GetUserID returns the user id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetClaims returns the verified claims set by Authenticate.
func GetClaims(c echo.Context) (*entity.ClaimSet, bool) {
	claims, ok := c.Get(keyClaims).(*entity.ClaimSet)

	return claims, ok && claims != nil
}
