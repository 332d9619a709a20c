package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndbell/authstore/internal/model"
)

type userResponse struct {
	ID            string     `json:"id"`
	Name          *string    `json:"name,omitempty"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty"`
}

func userResponseFrom(user model.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Image:         user.Image,
	}
}

type createUserRequest struct {
	ID            string     `json:"id,omitempty"`
	Name          *string    `json:"name,omitempty"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.adapter.CreateUser(r.Context(), model.User{
		ID:            req.ID,
		Name:          req.Name,
		Email:         req.Email,
		EmailVerified: req.EmailVerified,
		Image:         req.Image,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.adapter.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	user, err := h.adapter.GetUserByEmail(r.Context(), email)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

type updateUserRequest struct {
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty"`
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.adapter.UpdateUser(r.Context(), model.UpdateUserParams{
		ID:            chi.URLParam(r, "id"),
		Name:          req.Name,
		Email:         req.Email,
		EmailVerified: req.EmailVerified,
		Image:         req.Image,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.adapter.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}
