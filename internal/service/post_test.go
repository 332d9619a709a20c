package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ndbell/authstore/internal/mocks"
	"github.com/ndbell/authstore/internal/model"
	"github.com/ndbell/authstore/internal/testutil"
)

func TestPosts_Create_GeneratesID(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PostStore{}
	p := NewPosts(store, testutil.MakeNoopLogger())

	var created model.Post
	store.On("Create", mock.Anything, mock.AnythingOfType("model.Post")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Post)
		}).
		Return(model.Post{}, nil).
		Once()

	_, err := p.Create(ctx, model.Post{Title: strptr("hello")})
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
}

func TestPosts_Update_RequiresID(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PostStore{}
	p := NewPosts(store, testutil.MakeNoopLogger())

	_, err := p.Update(ctx, model.UpdatePostParams{Title: strptr("t")})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPosts_ListByUser(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PostStore{}
	p := NewPosts(store, testutil.MakeNoopLogger())

	want := []model.Post{{ID: "p1"}, {ID: "p2"}}
	store.On("GetByUserID", mock.Anything, "u1").Return(want, nil).Once()

	got, err := p.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
