package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndbell/authstore/internal/model"
)

type sessionResponse struct {
	SessionToken string    `json:"sessionToken"`
	UserID       string    `json:"userId"`
	Expires      time.Time `json:"expires"`
}

func sessionResponseFrom(session model.Session) sessionResponse {
	return sessionResponse{
		SessionToken: session.SessionToken,
		UserID:       session.UserID,
		Expires:      session.Expires,
	}
}

type createSessionRequest struct {
	SessionToken string    `json:"sessionToken"`
	UserID       string    `json:"userId"`
	Expires      time.Time `json:"expires"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.adapter.CreateSession(r.Context(), model.Session{
		SessionToken: req.SessionToken,
		UserID:       req.UserID,
		Expires:      req.Expires,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, sessionResponseFrom(session)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

type sessionAndUserResponse struct {
	Session sessionResponse `json:"session"`
	User    userResponse    `json:"user"`
}

func (h *Handler) getSessionAndUser(w http.ResponseWriter, r *http.Request) {
	session, user, err := h.adapter.GetSessionAndUser(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := sessionAndUserResponse{
		Session: sessionResponseFrom(session),
		User:    userResponseFrom(user),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

type updateSessionRequest struct {
	UserID  *string    `json:"userId,omitempty"`
	Expires *time.Time `json:"expires,omitempty"`
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	var req updateSessionRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.adapter.UpdateSession(r.Context(), model.UpdateSessionParams{
		SessionToken: chi.URLParam(r, "token"),
		UserID:       req.UserID,
		Expires:      req.Expires,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sessionResponseFrom(session)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.adapter.DeleteSession(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sessionResponseFrom(session)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}
