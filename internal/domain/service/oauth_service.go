package service

import (
	"context"
)

// OAuthUser represents the identity asserted by a verified Google ID token.
type OAuthUser struct {
	Subject       string // Google's 'sub' claim
	Email         string
	EmailVerified bool
	Name          string
}

// OAuthAuthService verifies ID tokens issued by Google Sign-In.
type OAuthAuthService interface {
	// VerifyIDToken validates signature, issuer, audience and expiry of the ID token.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
