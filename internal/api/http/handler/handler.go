package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/ndbell/authstore/internal/logger"
	"github.com/ndbell/authstore/internal/model"
)

// AdapterService is the auth-storage contract exposed over HTTP.
type AdapterService interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByAccount(ctx context.Context, provider, providerAccountID string) (model.User, error)
	UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	DeleteUser(ctx context.Context, id string) (model.User, error)
	CreateSession(ctx context.Context, session model.Session) (model.Session, error)
	GetSessionAndUser(ctx context.Context, sessionToken string) (model.Session, model.User, error)
	UpdateSession(ctx context.Context, params model.UpdateSessionParams) (model.Session, error)
	DeleteSession(ctx context.Context, sessionToken string) (model.Session, error)
	LinkAccount(ctx context.Context, account model.Account) (model.Account, error)
	UnlinkAccount(ctx context.Context, provider, providerAccountID string) error
	CreateVerificationToken(ctx context.Context, token model.VerificationToken) (model.VerificationToken, error)
	UseVerificationToken(ctx context.Context, identifier, token string) (model.VerificationToken, error)
}

// PostService manages post entities.
type PostService interface {
	Create(ctx context.Context, post model.Post) (model.Post, error)
	Get(ctx context.Context, id string) (model.Post, error)
	ListByUser(ctx context.Context, userID string) ([]model.Post, error)
	Update(ctx context.Context, params model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, id string) (model.Post, error)
}

// Handler carries the HTTP endpoints of the storage API.
type Handler struct {
	adapter AdapterService
	posts   PostService
	logger  *logger.Logger
}

func New(adapter AdapterService, posts PostService, logger *logger.Logger) *Handler {
	return &Handler{
		adapter: adapter,
		posts:   posts,
		logger:  logger,
	}
}

// Users mounts the user endpoints.
func (h *Handler) Users(r chi.Router) {
	r.Post("/", h.createUser)
	r.Get("/by-email", h.getUserByEmail)
	r.Get("/{id}", h.getUser)
	r.Patch("/{id}", h.updateUser)
	r.Delete("/{id}", h.deleteUser)
	r.Get("/{id}/posts", h.listUserPosts)
}

// Sessions mounts the session endpoints.
func (h *Handler) Sessions(r chi.Router) {
	r.Post("/", h.createSession)
	r.Get("/{token}", h.getSessionAndUser)
	r.Patch("/{token}", h.updateSession)
	r.Delete("/{token}", h.deleteSession)
}

// Accounts mounts the provider-account endpoints.
func (h *Handler) Accounts(r chi.Router) {
	r.Post("/", h.linkAccount)
	r.Get("/{provider}/{providerAccountID}/user", h.getUserByAccount)
	r.Delete("/{provider}/{providerAccountID}", h.unlinkAccount)
}

// VerificationTokens mounts the verification-token endpoints.
func (h *Handler) VerificationTokens(r chi.Router) {
	r.Post("/", h.createVerificationToken)
	r.Post("/use", h.useVerificationToken)
}

// Posts mounts the post endpoints.
func (h *Handler) Posts(r chi.Router) {
	r.Post("/", h.createPost)
	r.Get("/{id}", h.getPost)
	r.Patch("/{id}", h.updatePost)
	r.Delete("/{id}", h.deletePost)
}
