package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ndbell/authstore/internal/model"
)

// SessionStore is a testify mock of model.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session model.Session) (model.Session, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) GetWithUser(ctx context.Context, sessionToken string) (model.Session, model.User, error) {
	args := m.Called(ctx, sessionToken)
	return args.Get(0).(model.Session), args.Get(1).(model.User), args.Error(2)
}

func (m *SessionStore) Update(ctx context.Context, params model.UpdateSessionParams) (model.Session, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, sessionToken string) (model.Session, error) {
	args := m.Called(ctx, sessionToken)
	return args.Get(0).(model.Session), args.Error(1)
}
