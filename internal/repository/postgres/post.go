package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ndbell/authstore/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

// PostRepository persists posts.
type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (id, title, body, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, title, body, user_id, created_on, updated_on`

	var saved model.Post
	err := r.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Body, post.UserID,
	).Scan(&saved.ID, &saved.Title, &saved.Body, &saved.UserID, &saved.CreatedOn, &saved.UpdatedOn)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (model.Post, error) {
	query := `SELECT id, title, body, user_id, created_on, updated_on
			  FROM posts WHERE id = $1`

	var post model.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Body, &post.UserID, &post.CreatedOn, &post.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByUserID(ctx context.Context, userID string) ([]model.Post, error) {
	query := `SELECT id, title, body, user_id, created_on, updated_on
			  FROM posts WHERE user_id = $1
			  ORDER BY created_on`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Body, &post.UserID, &post.CreatedOn, &post.UpdatedOn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// Update applies the non-nil fields of params and bumps updated_on.
func (r *PostRepository) Update(ctx context.Context, params model.UpdatePostParams) (model.Post, error) {
	b := builder.Update("posts").
		Set("updated_on", sq.Expr("now()")).
		Where(sq.Eq{"id": params.ID})

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Body != nil {
		b = b.Set("body", *params.Body)
	}

	query, args, err := b.Suffix("RETURNING id, title, body, user_id, created_on, updated_on").ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to build post update: %w", err)
	}

	var post model.Post
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&post.ID, &post.Title, &post.Body, &post.UserID, &post.CreatedOn, &post.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) (model.Post, error) {
	query := `DELETE FROM posts WHERE id = $1
			  RETURNING id, title, body, user_id, created_on, updated_on`

	var post model.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Body, &post.UserID, &post.CreatedOn, &post.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to delete post: %w", err)
	}

	return post, nil
}
