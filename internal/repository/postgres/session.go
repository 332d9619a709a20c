package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ndbell/authstore/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository persists auth sessions.
type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	query := `INSERT INTO sessions (session_token, user_id, expires)
			  VALUES ($1, $2, $3)
			  RETURNING session_token, user_id, expires`

	var saved model.Session
	err := r.db.QueryRow(ctx, query,
		session.SessionToken, session.UserID, session.Expires,
	).Scan(&saved.SessionToken, &saved.UserID, &saved.Expires)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return saved, nil
}

// GetWithUser returns the session together with its owning user in a
// single round trip. The inner join makes a session whose user vanished
// read as absence.
func (r *SessionRepository) GetWithUser(ctx context.Context, sessionToken string) (model.Session, model.User, error) {
	query := `SELECT s.session_token, s.user_id, s.expires,
					 u.id, u.name, u.email, u.email_verified, u.image
			  FROM sessions s
			  JOIN users u ON u.id = s.user_id
			  WHERE s.session_token = $1`

	var session model.Session
	var user model.User
	err := r.db.QueryRow(ctx, query, sessionToken).Scan(
		&session.SessionToken, &session.UserID, &session.Expires,
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.User{}, model.ErrNotFound
		}
		return model.Session{}, model.User{}, fmt.Errorf("failed to get session with user: %w", err)
	}

	return session, user, nil
}

// Update applies the non-nil fields of params to the session matched by
// its token.
func (r *SessionRepository) Update(ctx context.Context, params model.UpdateSessionParams) (model.Session, error) {
	b := builder.Update("sessions").Where(sq.Eq{"session_token": params.SessionToken})

	set := false
	if params.UserID != nil {
		b = b.Set("user_id", *params.UserID)
		set = true
	}
	if params.Expires != nil {
		b = b.Set("expires", *params.Expires)
		set = true
	}
	if !set {
		return r.get(ctx, params.SessionToken)
	}

	query, args, err := b.Suffix("RETURNING session_token, user_id, expires").ToSql()
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to build session update: %w", err)
	}

	var session model.Session
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&session.SessionToken, &session.UserID, &session.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionToken string) (model.Session, error) {
	query := `DELETE FROM sessions WHERE session_token = $1
			  RETURNING session_token, user_id, expires`

	var session model.Session
	err := r.db.QueryRow(ctx, query, sessionToken).Scan(
		&session.SessionToken, &session.UserID, &session.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to delete session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) get(ctx context.Context, sessionToken string) (model.Session, error) {
	query := `SELECT session_token, user_id, expires
			  FROM sessions WHERE session_token = $1`

	var session model.Session
	err := r.db.QueryRow(ctx, query, sessionToken).Scan(
		&session.SessionToken, &session.UserID, &session.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
