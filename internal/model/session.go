package model

import (
	"context"
	"time"
)

// SessionStore defines persistence operations for auth sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetWithUser(ctx context.Context, sessionToken string) (Session, User, error)
	Update(ctx context.Context, params UpdateSessionParams) (Session, error)
	Delete(ctx context.Context, sessionToken string) (Session, error)
}

// Session represents an active auth session owned by a user.
type Session struct {
	SessionToken string
	UserID       string
	Expires      time.Time
}

// UpdateSessionParams carries a partial session update keyed by the
// session token. Nil fields are left untouched.
type UpdateSessionParams struct {
	SessionToken string
	UserID       *string
	Expires      *time.Time
}
