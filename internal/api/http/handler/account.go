package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndbell/authstore/internal/model"
)

// Optional token fields keep their provider wire names; absent values
// are omitted entirely, never sent as null.
type accountPayload struct {
	Provider          string  `json:"provider"`
	ProviderAccountID string  `json:"providerAccountId"`
	UserID            string  `json:"userId"`
	Type              string  `json:"type"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int64  `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

func accountPayloadFrom(account model.Account) accountPayload {
	return accountPayload{
		Provider:          account.Provider,
		ProviderAccountID: account.ProviderAccountID,
		UserID:            account.UserID,
		Type:              account.Type,
		RefreshToken:      account.RefreshToken,
		AccessToken:       account.AccessToken,
		ExpiresAt:         account.ExpiresAt,
		TokenType:         account.TokenType,
		Scope:             account.Scope,
		IDToken:           account.IDToken,
		SessionState:      account.SessionState,
	}
}

func (p accountPayload) toModel() model.Account {
	return model.Account{
		Provider:          p.Provider,
		ProviderAccountID: p.ProviderAccountID,
		UserID:            p.UserID,
		Type:              p.Type,
		RefreshToken:      p.RefreshToken,
		AccessToken:       p.AccessToken,
		ExpiresAt:         p.ExpiresAt,
		TokenType:         p.TokenType,
		Scope:             p.Scope,
		IDToken:           p.IDToken,
		SessionState:      p.SessionState,
	}
}

func (h *Handler) linkAccount(w http.ResponseWriter, r *http.Request) {
	var req accountPayload
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.adapter.LinkAccount(r.Context(), req.toModel())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, accountPayloadFrom(account)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) getUserByAccount(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	providerAccountID := chi.URLParam(r, "providerAccountID")

	user, err := h.adapter.GetUserByAccount(r.Context(), provider, providerAccountID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, userResponseFrom(user)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) unlinkAccount(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	providerAccountID := chi.URLParam(r, "providerAccountID")

	if err := h.adapter.UnlinkAccount(r.Context(), provider, providerAccountID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
