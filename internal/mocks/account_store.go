package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ndbell/authstore/internal/model"
)

// AccountStore is a testify mock of model.AccountStore.
type AccountStore struct {
	mock.Mock
}

func (m *AccountStore) Create(ctx context.Context, account model.Account) (model.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) Delete(ctx context.Context, provider, providerAccountID string) error {
	args := m.Called(ctx, provider, providerAccountID)
	return args.Error(0)
}
