package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

func (h *Handler) GetInfoPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.infoPosts.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.InfoPostsResponse{Posts: posts})
}

func (h *Handler) CreateInfoPost(w http.ResponseWriter, r *http.Request) {
	var body api.CreateInfoPostRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.infoPosts.Create(body.Title, body.Content, body.ImageURL)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.InfoPostCreatedResponse{Success: true, Post: post})
}

func (h *Handler) DeleteInfoPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.infoPosts.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}
