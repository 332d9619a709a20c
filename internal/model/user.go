package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByAccount(ctx context.Context, provider, providerAccountID string) (User, error)
	Update(ctx context.Context, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id string) (User, error)
}

// User represents an application user as stored for the auth layer.
type User struct {
	ID            string
	Name          *string
	Email         string
	EmailVerified *time.Time
	Image         *string
}

// UpdateUserParams carries a partial user update. Nil fields are left
// untouched.
type UpdateUserParams struct {
	ID            string
	Name          *string
	Email         *string
	EmailVerified *time.Time
	Image         *string
}
