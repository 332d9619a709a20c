package model

import (
	"context"
	"time"
)

// VerificationTokenStore persists single-use verification tokens.
type VerificationTokenStore interface {
	Create(ctx context.Context, token VerificationToken) (VerificationToken, error)
	// Consume deletes and returns the matching token. A second call with
	// the same pair returns ErrNotFound.
	Consume(ctx context.Context, identifier, token string) (VerificationToken, error)
}

// VerificationToken proves control of an identifier (usually an email
// address) and is valid for exactly one use.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}
