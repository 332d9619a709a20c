package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndbell/authstore/internal/logger"
	"github.com/ndbell/authstore/internal/model"
)

// Adapter implements the auth-storage contract over the injected stores.
// It holds no state of its own beyond the stores and logger.
type Adapter struct {
	users              model.UserStore
	sessions           model.SessionStore
	accounts           model.AccountStore
	verificationTokens model.VerificationTokenStore
	logger             *logger.Logger
}

func NewAdapter(
	users model.UserStore,
	sessions model.SessionStore,
	accounts model.AccountStore,
	verificationTokens model.VerificationTokenStore,
	logger *logger.Logger,
) *Adapter {
	return &Adapter{
		users:              users,
		sessions:           sessions,
		accounts:           accounts,
		verificationTokens: verificationTokens,
		logger:             logger,
	}
}

// CreateUser inserts a new user, generating an identifier when none is
// supplied.
func (a *Adapter) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("adapter: failed to create user",
			"email", user.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Debug("adapter: user created", "user_id", saved.ID)
	return saved, nil
}

func (a *Adapter) GetUser(ctx context.Context, id string) (model.User, error) {
	return a.users.GetByID(ctx, id)
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return a.users.GetByEmail(ctx, email)
}

func (a *Adapter) GetUserByAccount(ctx context.Context, provider, providerAccountID string) (model.User, error) {
	return a.users.GetByAccount(ctx, provider, providerAccountID)
}

// UpdateUser applies a partial update. A missing id is a programmer
// error and is rejected before any store call.
func (a *Adapter) UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	if params.ID == "" {
		return model.User{}, fmt.Errorf("%w: user id is required", model.ErrInvalidArgument)
	}

	user, err := a.users.Update(ctx, params)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		a.logger.Error("adapter: failed to update user",
			"user_id", params.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (a *Adapter) DeleteUser(ctx context.Context, id string) (model.User, error) {
	user, err := a.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		a.logger.Error("adapter: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Debug("adapter: user deleted", "user_id", id)
	return user, nil
}

func (a *Adapter) CreateSession(ctx context.Context, session model.Session) (model.Session, error) {
	saved, err := a.sessions.Create(ctx, session)
	if err != nil {
		a.logger.Error("adapter: failed to create session",
			"user_id", session.UserID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return saved, nil
}

func (a *Adapter) GetSessionAndUser(ctx context.Context, sessionToken string) (model.Session, model.User, error) {
	return a.sessions.GetWithUser(ctx, sessionToken)
}

func (a *Adapter) UpdateSession(ctx context.Context, params model.UpdateSessionParams) (model.Session, error) {
	session, err := a.sessions.Update(ctx, params)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, err
		}
		return model.Session{}, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (a *Adapter) DeleteSession(ctx context.Context, sessionToken string) (model.Session, error) {
	return a.sessions.Delete(ctx, sessionToken)
}

// LinkAccount inserts the account and normalizes its optional fields so
// empty values read as absent, which the consuming auth layer expects.
func (a *Adapter) LinkAccount(ctx context.Context, account model.Account) (model.Account, error) {
	saved, err := a.accounts.Create(ctx, account)
	if err != nil {
		a.logger.Error("adapter: failed to link account",
			"provider", account.Provider,
			"user_id", account.UserID,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to link account: %w", err)
	}

	return normalizeAccount(saved), nil
}

func (a *Adapter) UnlinkAccount(ctx context.Context, provider, providerAccountID string) error {
	if err := a.accounts.Delete(ctx, provider, providerAccountID); err != nil {
		a.logger.Error("adapter: failed to unlink account",
			"provider", provider,
			"error", err.Error())
		return fmt.Errorf("failed to unlink account: %w", err)
	}

	return nil
}

func (a *Adapter) CreateVerificationToken(ctx context.Context, token model.VerificationToken) (model.VerificationToken, error) {
	saved, err := a.verificationTokens.Create(ctx, token)
	if err != nil {
		a.logger.Error("adapter: failed to create verification token",
			"identifier", token.Identifier,
			"error", err.Error())
		return model.VerificationToken{}, fmt.Errorf("failed to create verification token: %w", err)
	}

	return saved, nil
}

// UseVerificationToken consumes the matching token. Every failure is
// surfaced as ErrVerificationTokenNotFound; the cause stays reachable
// through the wrap chain.
func (a *Adapter) UseVerificationToken(ctx context.Context, identifier, token string) (model.VerificationToken, error) {
	consumed, err := a.verificationTokens.Consume(ctx, identifier, token)
	if err != nil {
		return model.VerificationToken{}, fmt.Errorf("%w: %w", model.ErrVerificationTokenNotFound, err)
	}

	a.logger.Debug("adapter: verification token consumed", "identifier", identifier)
	return consumed, nil
}

// normalizeAccount maps empty optional values to absent. Pure; no store
// interaction.
func normalizeAccount(account model.Account) model.Account {
	account.RefreshToken = normalizeOptional(account.RefreshToken)
	account.AccessToken = normalizeOptional(account.AccessToken)
	account.TokenType = normalizeOptional(account.TokenType)
	account.Scope = normalizeOptional(account.Scope)
	account.IDToken = normalizeOptional(account.IDToken)
	account.SessionState = normalizeOptional(account.SessionState)
	return account
}

func normalizeOptional(value *string) *string {
	if value != nil && *value == "" {
		return nil
	}
	return value
}
