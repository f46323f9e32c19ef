package google

import (
	"context"
	"log/slog"
	"testing"

	"livewell/config"
	domainerrors "livewell/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestAuthService(validate payloadValidator) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}

	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func staticPayload(p *idtoken.Payload) payloadValidator {
	return func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		if audience != "test_client_id" {
			return nil, errors.New("audience mismatch")
		}

		return p, nil
	}
}

func TestAuthService_VerifyIDToken_Success(t *testing.T) {
	svc := createTestAuthService(staticPayload(&idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "google-sub-123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
		},
	}))

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.Subject)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		validate payloadValidator
	}{
		{
			name: "signature rejected",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("idtoken: invalid token")
			},
		},
		{
			name: "foreign issuer",
			validate: staticPayload(&idtoken.Payload{
				Issuer: "https://evil.example.com",
				Claims: map[string]any{"email": "a@b.c", "email_verified": true},
			}),
		},
		{
			name: "email not verified",
			validate: staticPayload(&idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email": "a@b.c", "email_verified": "false"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := createTestAuthService(tt.validate).VerifyIDToken(context.Background(), "id-token")
			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
		})
	}
}

func TestAuthService_RequiresClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	assert.Error(t, err)
}
