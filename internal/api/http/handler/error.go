package handler

import (
	"errors"
	"net/http"

	"github.com/ndbell/authstore/internal/model"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		"method", r.Method,
		"url", r.URL.String(),
		"error", err.Error())

	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrVerificationTokenNotFound):
		http.Error(w, "no verification token found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
