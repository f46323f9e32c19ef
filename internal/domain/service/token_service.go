package service

import (
	"time"

	"livewell/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService verifies bearer tokens under either signing scheme and mints first-party tokens.
type TokenService interface {
	// Verify checks the token against the key material of scheme and returns its claims.
	// Every failure is an authentication error; no partial claim set is returned.
	Verify(scheme entity.Scheme, token string) (*entity.ClaimSet, error)

	// IssueFirstParty signs an HS256 token for the user and returns it with its expiry.
	IssueFirstParty(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)
}
