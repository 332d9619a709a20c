package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id string) (Post, error)
	GetByUserID(ctx context.Context, userID string) ([]Post, error)
	Update(ctx context.Context, params UpdatePostParams) (Post, error)
	Delete(ctx context.Context, id string) (Post, error)
}

// Post is a content entity referencing its author. The user reference is
// a plain foreign key without cascade.
type Post struct {
	ID        string
	Title     *string
	Body      *string
	UserID    *string
	CreatedOn time.Time
	UpdatedOn time.Time
}

// UpdatePostParams carries a partial post update. Nil fields are left
// untouched; updated_on is bumped by the store.
type UpdatePostParams struct {
	ID    string
	Title *string
	Body  *string
}
