package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserAccount is the minimal identity row owned by the identity provider.
type UserAccount struct {
	ID    uuid.UUID
	Email string
}

// UserDirectory reads the accounts known to the identity provider.
type UserDirectory interface {
	// ListUserIDs returns every known user id.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)

	// FindByEmail returns the account registered with email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*UserAccount, error)
}
