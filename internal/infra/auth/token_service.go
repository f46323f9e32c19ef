// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/json"
	"os"
	"time"

	"livewell/config"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/service"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenClaims is the payload shared by both schemes.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService verifies first-party HS256 tokens with a shared secret and federated ES256
// tokens with the identity provider's public key.
type tokenService struct {
	audience     string
	issuer       string
	secret       []byte
	ttl          time.Duration
	federatedKey jwt.Keyfunc
	now          func() time.Time
}

// NewTokenService builds the verifier from config. The federated public key is loaded once
// from the configured JWK set; it is never refreshed at runtime.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.FirstPartySecret == "" {
		return nil, errors.New("first-party token secret must be provided")
	}

	jwks, err := loadJWKS(cfg.Auth)
	if err != nil {
		return nil, err
	}

	federated, err := keyfunc.NewJWKSetJSON(jwks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse federated JWK set")
	}

	return newTokenService(cfg.Auth, federated.Keyfunc, time.Now), nil
}

func newTokenService(authCfg *config.AuthConfig, federatedKey jwt.Keyfunc, now func() time.Time) *tokenService {
	return &tokenService{
		audience:     authCfg.Audience,
		issuer:       authCfg.Issuer,
		secret:       []byte(authCfg.FirstPartySecret),
		ttl:          authCfg.FirstPartyTokenTTL,
		federatedKey: federatedKey,
		now:          now,
	}
}

func loadJWKS(authCfg *config.AuthConfig) (json.RawMessage, error) {
	if authCfg.FederatedJWKS != "" {
		return json.RawMessage(authCfg.FederatedJWKS), nil
	}

	if authCfg.FederatedJWKSPath == "" {
		return nil, errors.New("federated JWK set must be provided")
	}

	raw, err := os.ReadFile(authCfg.FederatedJWKSPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read federated JWK set")
	}

	return raw, nil
}

// Verify checks the token under the given scheme.
func (s *tokenService) Verify(scheme entity.Scheme, token string) (*entity.ClaimSet, error) {
	var (
		keyFunc jwt.Keyfunc
		method  string
	)

	switch scheme {
	case entity.SchemeFirstParty:
		keyFunc = s.firstPartyKey
		method = jwt.SigningMethodHS256.Alg()
	case entity.SchemeFederated:
		keyFunc = s.federatedKey
		method = jwt.SigningMethodES256.Alg()
	default:
		return nil, domainerrors.ErrUnknownScheme.WithDetails(string(scheme))
	}

	claims := &tokenClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, keyFunc,
		jwt.WithValidMethods([]string{method}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	); err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrTokenMalformed.WithDetails("subject claim is empty")
	}

	result := &entity.ClaimSet{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		Audience:  s.audience,
		Issuer:    claims.Issuer,
		ExpiresAt: claims.ExpiresAt.Time,
		Scheme:    scheme,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

// IssueFirstParty signs an HS256 token for the user.
func (s *tokenService) IssueFirstParty(userID uuid.UUID, email string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := tokenClaims{
		Email: email,
		Role:  entity.RoleAuthenticated,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{s.audience},
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

func (s *tokenService) firstPartyKey(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

// classifyTokenError maps jwt validation errors onto the authentication error kinds.
// Expiry wins over audience when both fail.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed.WithDetails(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrTokenSignatureInvalid.WithDetails(err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WithDetails(err.Error())
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return domainerrors.ErrTokenAudienceMismatch.WithDetails(err.Error())
	default:
		return domainerrors.ErrTokenMalformed.WithDetails(err.Error())
	}
}
