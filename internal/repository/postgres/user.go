package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ndbell/authstore/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users.
type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, name, email, email_verified, image)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, email, email_verified, image`

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.EmailVerified, user.Image,
	).Scan(&saved.ID, &saved.Name, &saved.Email, &saved.EmailVerified, &saved.Image)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, email_verified, image
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, email_verified, image
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByAccount resolves the user owning the account with the given
// compound key. The join is LEFT so an orphaned account row (impossible
// under the foreign key, but not assumed) reads as absence rather than a
// scan failure.
func (r *UserRepository) GetByAccount(ctx context.Context, provider, providerAccountID string) (model.User, error) {
	query := `SELECT u.id, u.name, u.email, u.email_verified, u.image
			  FROM accounts a
			  LEFT JOIN users u ON u.id = a.user_id
			  WHERE a.provider = $1 AND a.provider_account_id = $2`

	var user model.User
	var userID, userEmail *string
	err := r.db.QueryRow(ctx, query, provider, providerAccountID).Scan(
		&userID, &user.Name, &userEmail, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by account: %w", err)
	}
	if userID == nil {
		return model.User{}, model.ErrNotFound
	}

	user.ID = *userID
	if userEmail != nil {
		user.Email = *userEmail
	}

	return user, nil
}

// Update applies the non-nil fields of params. With nothing to change it
// degrades to a plain read so callers still get the current row back.
func (r *UserRepository) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	b := builder.Update("users").Where(sq.Eq{"id": params.ID})

	set := false
	if params.Name != nil {
		b = b.Set("name", *params.Name)
		set = true
	}
	if params.Email != nil {
		b = b.Set("email", *params.Email)
		set = true
	}
	if params.EmailVerified != nil {
		b = b.Set("email_verified", *params.EmailVerified)
		set = true
	}
	if params.Image != nil {
		b = b.Set("image", *params.Image)
		set = true
	}
	if !set {
		return r.GetByID(ctx, params.ID)
	}

	query, args, err := b.Suffix("RETURNING id, name, email, email_verified, image").ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to build user update: %w", err)
	}

	var user model.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (model.User, error) {
	query := `DELETE FROM users WHERE id = $1
			  RETURNING id, name, email, email_verified, image`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}
