package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ndbell/authstore/internal/mocks"
	"github.com/ndbell/authstore/internal/model"
	"github.com/ndbell/authstore/internal/testutil"
)

func newTestAdapter() (*Adapter, *mocks.UserStore, *mocks.SessionStore, *mocks.AccountStore, *mocks.VerificationTokenStore) {
	users := &mocks.UserStore{}
	sessions := &mocks.SessionStore{}
	accounts := &mocks.AccountStore{}
	verificationTokens := &mocks.VerificationTokenStore{}
	a := NewAdapter(users, sessions, accounts, verificationTokens, testutil.MakeNoopLogger())
	return a, users, sessions, accounts, verificationTokens
}

func strptr(s string) *string { return &s }

func TestAdapter_CreateUser_GeneratesID(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	var created model.User
	users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.User)
		}).
		Return(model.User{}, nil).
		Once()

	_, err := a.CreateUser(ctx, model.User{Email: "a@b.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", created.Email)
}

func TestAdapter_CreateUser_KeepsSuppliedID(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	supplied := model.User{ID: "fixed-id", Email: "a@b.com"}
	users.On("Create", mock.Anything, supplied).Return(supplied, nil).Once()

	saved, err := a.CreateUser(ctx, supplied)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", saved.ID)
	users.AssertExpectations(t)
}

func TestAdapter_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	users.On("GetByID", mock.Anything, "missing").Return(model.User{}, model.ErrNotFound)

	_, err := a.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdapter_UpdateUser_RequiresID(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	_, err := a.UpdateUser(ctx, model.UpdateUserParams{Name: strptr("n")})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdapter_UpdateUser_PassesThrough(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	params := model.UpdateUserParams{ID: "u1", Name: strptr("renamed")}
	want := model.User{ID: "u1", Name: strptr("renamed"), Email: "a@b.com"}
	users.On("Update", mock.Anything, params).Return(want, nil).Once()

	got, err := a.UpdateUser(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdapter_LinkAccount_NormalizesEmptyOptionals(t *testing.T) {
	ctx := context.Background()
	a, _, _, accounts, _ := newTestAdapter()

	stored := model.Account{
		Provider:          "github",
		ProviderAccountID: "123",
		UserID:            "u1",
		Type:              "oauth",
		AccessToken:       strptr(""),
		Scope:             strptr("read:user"),
		TokenType:         strptr(""),
	}
	accounts.On("Create", mock.Anything, mock.Anything).Return(stored, nil).Once()

	linked, err := a.LinkAccount(ctx, stored)
	require.NoError(t, err)

	assert.Nil(t, linked.AccessToken)
	assert.Nil(t, linked.TokenType)
	assert.Nil(t, linked.RefreshToken)
	require.NotNil(t, linked.Scope)
	assert.Equal(t, "read:user", *linked.Scope)
}

func TestAdapter_GetUserByAccount_NotFound(t *testing.T) {
	ctx := context.Background()
	a, users, _, _, _ := newTestAdapter()

	users.On("GetByAccount", mock.Anything, "github", "missing").Return(model.User{}, model.ErrNotFound)

	_, err := a.GetUserByAccount(ctx, "github", "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdapter_GetSessionAndUser(t *testing.T) {
	ctx := context.Background()
	a, _, sessions, _, _ := newTestAdapter()

	wantSession := model.Session{SessionToken: "tok", UserID: "u1", Expires: time.Now().Add(time.Hour)}
	wantUser := model.User{ID: "u1", Email: "a@b.com"}
	sessions.On("GetWithUser", mock.Anything, "tok").Return(wantSession, wantUser, nil).Once()

	session, user, err := a.GetSessionAndUser(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, wantSession, session)
	assert.Equal(t, wantUser, user)
}

func TestAdapter_DeleteSession_NotFound(t *testing.T) {
	ctx := context.Background()
	a, _, sessions, _, _ := newTestAdapter()

	sessions.On("Delete", mock.Anything, "missing").Return(model.Session{}, model.ErrNotFound)

	_, err := a.DeleteSession(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdapter_UseVerificationToken_WrapsAbsence(t *testing.T) {
	ctx := context.Background()
	a, _, _, _, verificationTokens := newTestAdapter()

	verificationTokens.On("Consume", mock.Anything, "x@y.com", "abc").
		Return(model.VerificationToken{}, model.ErrNotFound)

	_, err := a.UseVerificationToken(ctx, "x@y.com", "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrVerificationTokenNotFound)
	// The cause stays visible through the chain.
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdapter_UseVerificationToken_WrapsStoreFault(t *testing.T) {
	ctx := context.Background()
	a, _, _, _, verificationTokens := newTestAdapter()

	storeErr := errors.New("connection reset")
	verificationTokens.On("Consume", mock.Anything, "x@y.com", "abc").
		Return(model.VerificationToken{}, storeErr)

	_, err := a.UseVerificationToken(ctx, "x@y.com", "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrVerificationTokenNotFound)
	assert.ErrorIs(t, err, storeErr)
}

func TestAdapter_UseVerificationToken_Success(t *testing.T) {
	ctx := context.Background()
	a, _, _, _, verificationTokens := newTestAdapter()

	want := model.VerificationToken{Identifier: "x@y.com", Token: "abc", Expires: time.Now().Add(time.Hour)}
	verificationTokens.On("Consume", mock.Anything, "x@y.com", "abc").Return(want, nil).Once()

	got, err := a.UseVerificationToken(ctx, "x@y.com", "abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdapter_UnlinkAccount(t *testing.T) {
	ctx := context.Background()
	a, _, _, accounts, _ := newTestAdapter()

	accounts.On("Delete", mock.Anything, "github", "123").Return(nil).Once()

	require.NoError(t, a.UnlinkAccount(ctx, "github", "123"))
	accounts.AssertExpectations(t)
}

func TestNormalizeAccount(t *testing.T) {
	account := model.Account{
		Provider:     "github",
		RefreshToken: strptr(""),
		AccessToken:  strptr("tok"),
		IDToken:      nil,
		SessionState: strptr(""),
	}

	normalized := normalizeAccount(account)

	assert.Nil(t, normalized.RefreshToken)
	assert.Nil(t, normalized.SessionState)
	assert.Nil(t, normalized.IDToken)
	require.NotNil(t, normalized.AccessToken)
	assert.Equal(t, "tok", *normalized.AccessToken)
	// Input value is untouched.
	assert.NotNil(t, account.RefreshToken)
}
