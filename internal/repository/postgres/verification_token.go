package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndbell/authstore/internal/model"
)

var _ model.VerificationTokenStore = (*VerificationTokenRepository)(nil)

// VerificationTokenRepository persists single-use verification tokens.
type VerificationTokenRepository struct {
	db *Connection
}

func NewVerificationTokenRepository(db *Connection) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

func (r *VerificationTokenRepository) Create(ctx context.Context, token model.VerificationToken) (model.VerificationToken, error) {
	query := `INSERT INTO verification_tokens (identifier, token, expires)
			  VALUES ($1, $2, $3)
			  RETURNING identifier, token, expires`

	var saved model.VerificationToken
	err := r.db.QueryRow(ctx, query,
		token.Identifier, token.Token, token.Expires,
	).Scan(&saved.Identifier, &saved.Token, &saved.Expires)
	if err != nil {
		return model.VerificationToken{}, fmt.Errorf("failed to create verification token: %w", err)
	}

	return saved, nil
}

// Consume atomically removes and returns the matching token. DELETE with
// RETURNING is a single statement, so two concurrent consumers cannot
// both succeed.
func (r *VerificationTokenRepository) Consume(ctx context.Context, identifier, token string) (model.VerificationToken, error) {
	query := `DELETE FROM verification_tokens
			  WHERE identifier = $1 AND token = $2
			  RETURNING identifier, token, expires`

	var consumed model.VerificationToken
	err := r.db.QueryRow(ctx, query, identifier, token).Scan(
		&consumed.Identifier, &consumed.Token, &consumed.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationToken{}, model.ErrNotFound
		}
		return model.VerificationToken{}, fmt.Errorf("failed to consume verification token: %w", err)
	}

	return consumed, nil
}
