package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndbell/authstore/internal/model"
)

type postResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Body      *string   `json:"body,omitempty"`
	UserID    *string   `json:"userId,omitempty"`
	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
}

func postResponseFrom(post model.Post) postResponse {
	return postResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		UserID:    post.UserID,
		CreatedOn: post.CreatedOn,
		UpdatedOn: post.UpdatedOn,
	}
}

type createPostRequest struct {
	ID     string  `json:"id,omitempty"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	UserID *string `json:"userId,omitempty"`
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.posts.Create(r.Context(), model.Post{
		ID:     req.ID,
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, postResponseFrom(post)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, postResponseFrom(post)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) listUserPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, postResponseFrom(post))
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

type updatePostRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.posts.Update(r.Context(), model.UpdatePostParams{
		ID:    chi.URLParam(r, "id"),
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, postResponseFrom(post)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, postResponseFrom(post)); err != nil {
		h.logger.Error("failed to write response", "error", err.Error())
	}
}
