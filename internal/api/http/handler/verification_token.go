package handler

import (
	"net/http"
	"time"

	"github.com/ndbell/authstore/internal/model"
)

type verificationTokenPayload struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"token"`
	Expires    time.Time `json:"expires"`
}

func (h *Handler) createVerificationToken(w http.ResponseWriter, r *http.Request) {
	var req verificationTokenPayload
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.adapter.CreateVerificationToken(r.Context(), model.VerificationToken{
		Identifier: req.Identifier,
		Token:      req.Token,
		Expires:    req.Expires,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := verificationTokenPayload{
		Identifier: created.Identifier,
		Token:      created.Token,
		Expires:    created.Expires,
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

type useVerificationTokenRequest struct {
	Identifier string `json:"identifier"`
	Token      string `json:"token"`
}

func (h *Handler) useVerificationToken(w http.ResponseWriter, r *http.Request) {
	var req useVerificationTokenRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	consumed, err := h.adapter.UseVerificationToken(r.Context(), req.Identifier, req.Token)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := verificationTokenPayload{
		Identifier: consumed.Identifier,
		Token:      consumed.Token,
		Expires:    consumed.Expires,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}
