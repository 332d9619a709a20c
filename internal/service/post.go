package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndbell/authstore/internal/logger"
	"github.com/ndbell/authstore/internal/model"
)

// Posts manages post content entities.
type Posts struct {
	posts  model.PostStore
	logger *logger.Logger
}

func NewPosts(posts model.PostStore, logger *logger.Logger) *Posts {
	return &Posts{posts: posts, logger: logger}
}

// Create inserts a new post, generating an identifier when none is
// supplied. Audit timestamps are set by the store.
func (p *Posts) Create(ctx context.Context, post model.Post) (model.Post, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	saved, err := p.posts.Create(ctx, post)
	if err != nil {
		p.logger.Error("posts: failed to create post", "error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (p *Posts) Get(ctx context.Context, id string) (model.Post, error) {
	return p.posts.GetByID(ctx, id)
}

func (p *Posts) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	posts, err := p.posts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (p *Posts) Update(ctx context.Context, params model.UpdatePostParams) (model.Post, error) {
	if params.ID == "" {
		return model.Post{}, fmt.Errorf("%w: post id is required", model.ErrInvalidArgument)
	}

	post, err := p.posts.Update(ctx, params)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, err
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (p *Posts) Delete(ctx context.Context, id string) (model.Post, error) {
	return p.posts.Delete(ctx, id)
}
