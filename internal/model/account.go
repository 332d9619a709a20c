package model

import "context"

// AccountStore defines persistence operations for provider accounts.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, provider, providerAccountID string) error
}

// Account links a user to an external provider identity. Uniqueness is
// enforced on (provider, provider_account_id).
type Account struct {
	Provider          string
	ProviderAccountID string
	UserID            string
	Type              string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IDToken           *string
	SessionState      *string
}
