package postgres

import (
	"context"
	"fmt"

	"github.com/ndbell/authstore/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

// AccountRepository persists provider accounts.
type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (
				provider, provider_account_id, user_id, type,
				refresh_token, access_token, expires_at, token_type,
				scope, id_token, session_state)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING provider, provider_account_id, user_id, type,
						refresh_token, access_token, expires_at, token_type,
						scope, id_token, session_state`

	var saved model.Account
	err := r.db.QueryRow(ctx, query,
		account.Provider, account.ProviderAccountID, account.UserID, account.Type,
		account.RefreshToken, account.AccessToken, account.ExpiresAt, account.TokenType,
		account.Scope, account.IDToken, account.SessionState,
	).Scan(
		&saved.Provider, &saved.ProviderAccountID, &saved.UserID, &saved.Type,
		&saved.RefreshToken, &saved.AccessToken, &saved.ExpiresAt, &saved.TokenType,
		&saved.Scope, &saved.IDToken, &saved.SessionState,
	)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

// Delete removes the account with the given compound key. Deleting an
// absent account is not an error.
func (r *AccountRepository) Delete(ctx context.Context, provider, providerAccountID string) error {
	query := `DELETE FROM accounts
			  WHERE provider = $1 AND provider_account_id = $2`

	if _, err := r.db.Exec(ctx, query, provider, providerAccountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
