package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ndbell/authstore/internal/api/http/handler"
	"github.com/ndbell/authstore/internal/mocks"
	"github.com/ndbell/authstore/internal/model"
	"github.com/ndbell/authstore/internal/service"
	"github.com/ndbell/authstore/internal/testutil"
)

type stores struct {
	users              *mocks.UserStore
	sessions           *mocks.SessionStore
	accounts           *mocks.AccountStore
	verificationTokens *mocks.VerificationTokenStore
	posts              *mocks.PostStore
}

func newTestRouter() (http.Handler, *stores) {
	s := &stores{
		users:              &mocks.UserStore{},
		sessions:           &mocks.SessionStore{},
		accounts:           &mocks.AccountStore{},
		verificationTokens: &mocks.VerificationTokenStore{},
		posts:              &mocks.PostStore{},
	}
	log := testutil.MakeNoopLogger()
	h := handler.New(
		service.NewAdapter(s.users, s.sessions, s.accounts, s.verificationTokens, log),
		service.NewPosts(s.posts, log),
		log,
	)

	r := chi.NewRouter()
	r.Route("/users", h.Users)
	r.Route("/sessions", h.Sessions)
	r.Route("/accounts", h.Accounts)
	r.Route("/verification-tokens", h.VerificationTokens)
	r.Route("/posts", h.Posts)
	return r, s
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateUser(t *testing.T) {
	router, s := newTestRouter()

	s.users.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Return(model.User{ID: "generated", Email: "a@b.com"}, nil).
		Once()

	rec := doRequest(t, router, http.MethodPost, "/users", `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"id":"generated"`)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.com"`)
	// Absent optionals are omitted, not null.
	assert.NotContains(t, rec.Body.String(), "null")
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	router, s := newTestRouter()

	s.users.On("GetByID", mock.Anything, "missing").Return(model.User{}, model.ErrNotFound)

	rec := doRequest(t, router, http.MethodGet, "/users/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetUserByEmail_RequiresParam(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/users/by-email", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetUserByEmail(t *testing.T) {
	router, s := newTestRouter()

	s.users.On("GetByEmail", mock.Anything, "a@b.com").
		Return(model.User{ID: "u1", Email: "a@b.com"}, nil).
		Once()

	rec := doRequest(t, router, http.MethodGet, "/users/by-email?email=a%40b.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)
}

func TestHandler_GetSessionAndUser(t *testing.T) {
	router, s := newTestRouter()

	expires := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	s.sessions.On("GetWithUser", mock.Anything, "tok").
		Return(
			model.Session{SessionToken: "tok", UserID: "u1", Expires: expires},
			model.User{ID: "u1", Email: "a@b.com"},
			nil,
		).
		Once()

	rec := doRequest(t, router, http.MethodGet, "/sessions/tok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session"`)
	assert.Contains(t, rec.Body.String(), `"user"`)
	assert.Contains(t, rec.Body.String(), `"sessionToken":"tok"`)
}

func TestHandler_DeleteSession_NotFound(t *testing.T) {
	router, s := newTestRouter()

	s.sessions.On("Delete", mock.Anything, "missing").Return(model.Session{}, model.ErrNotFound)

	rec := doRequest(t, router, http.MethodDelete, "/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_LinkAccount_OmitsEmptyOptionals(t *testing.T) {
	router, s := newTestRouter()

	empty := ""
	stored := model.Account{
		Provider:          "github",
		ProviderAccountID: "123",
		UserID:            "u1",
		Type:              "oauth",
		AccessToken:       &empty,
	}
	s.accounts.On("Create", mock.Anything, mock.Anything).Return(stored, nil).Once()

	rec := doRequest(t, router, http.MethodPost, "/accounts",
		`{"provider":"github","providerAccountId":"123","userId":"u1","type":"oauth","access_token":""}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
}

func TestHandler_UnlinkAccount(t *testing.T) {
	router, s := newTestRouter()

	s.accounts.On("Delete", mock.Anything, "github", "123").Return(nil).Once()

	rec := doRequest(t, router, http.MethodDelete, "/accounts/github/123", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_UseVerificationToken_SecondUse(t *testing.T) {
	router, s := newTestRouter()

	s.verificationTokens.On("Consume", mock.Anything, "x@y.com", "abc").
		Return(model.VerificationToken{}, model.ErrNotFound)

	rec := doRequest(t, router, http.MethodPost, "/verification-tokens/use",
		`{"identifier":"x@y.com","token":"abc"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no verification token found")
}

func TestHandler_CreatePost(t *testing.T) {
	router, s := newTestRouter()

	title := "hello"
	s.posts.On("Create", mock.Anything, mock.AnythingOfType("model.Post")).
		Return(model.Post{ID: "p1", Title: &title, CreatedOn: time.Now(), UpdatedOn: time.Now()}, nil).
		Once()

	rec := doRequest(t, router, http.MethodPost, "/posts", `{"title":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p1"`)
}

func TestHandler_ListUserPosts(t *testing.T) {
	router, s := newTestRouter()

	s.posts.On("GetByUserID", mock.Anything, "u1").Return([]model.Post{}, nil).Once()

	rec := doRequest(t, router, http.MethodGet, "/users/u1/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandler_BadJSON(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/users", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
