package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenOutput is a minted first-party token.
type TokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
}

// AuthUsecase turns a Google sign-in into a first-party token.
type AuthUsecase interface {
	// ExchangeGoogleToken verifies the Google ID token, resolves the account by its
	// verified email and issues a first-party token for it.
	ExchangeGoogleToken(ctx context.Context, idToken string) (*TokenOutput, error)
}
