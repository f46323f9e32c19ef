// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Scheme selects which signing scheme a bearer token is verified against.
// The values match the route suffix the client calls.
type Scheme string

const (
	// SchemeFederated is used by tokens issued by the external identity provider (ES256).
	SchemeFederated Scheme = "email"
	// SchemeFirstParty is used by tokens this service mints itself (HS256).
	SchemeFirstParty Scheme = "google"
)

// RoleAuthenticated is the role and audience carried by every accepted token.
const RoleAuthenticated = "authenticated"

// Valid reports whether s is one of the known schemes.
func (s Scheme) Valid() bool {
	return s == SchemeFederated || s == SchemeFirstParty
}

// ClaimSet is the verified identity extracted from a bearer token.
// It lives for one request and is never persisted.
type ClaimSet struct {
	Subject   string    `json:"sub"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Audience  string    `json:"aud"`
	Issuer    string    `json:"iss"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	Scheme    Scheme    `json:"-"`
}

// UserID parses the subject as the user's UUID.
func (c *ClaimSet) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "subject is not a user id")
	}

	return id, nil
}
