package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ndbell/authstore/internal/model"
)

// VerificationTokenStore is a testify mock of model.VerificationTokenStore.
type VerificationTokenStore struct {
	mock.Mock
}

func (m *VerificationTokenStore) Create(ctx context.Context, token model.VerificationToken) (model.VerificationToken, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.VerificationToken), args.Error(1)
}

func (m *VerificationTokenStore) Consume(ctx context.Context, identifier, token string) (model.VerificationToken, error) {
	args := m.Called(ctx, identifier, token)
	return args.Get(0).(model.VerificationToken), args.Error(1)
}
