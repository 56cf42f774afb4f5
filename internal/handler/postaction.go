package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/middleware"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

// PostAction dispatches /posts/{id}/{action}. Likes key on the signed
// client identity; pinning is reserved for admins.
func (h *Handler) PostAction(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "id")
	action := chi.URLParam(r, "action")

	switch action {
	case "like", "unlike":
		h.toggleLike(w, r, postId, action)
	case "pin", "unpin":
		h.togglePin(w, r, postId, action)
	default:
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("Invalid action"))
	}
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request, postId, action string) {
	client := middleware.GetClientId(r)

	var target *domain.LikeTarget
	var err error
	if action == "like" {
		target, err = h.actions.Like(postId, client)
	} else {
		target, err = h.actions.Unlike(postId, client)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	likes := target.Likes()
	writeJSON(w, api.PostActionResponse{Success: true, Post: api.PostSnapshot{
		Id:        target.Id(),
		Likes:     likes,
		LikeCount: len(likes),
	}})
}

func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request, postId, action string) {
	if !middleware.IsAdminRequest(r) {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{
			Message: "Access denied. Only for admin", StatusCode: http.StatusForbidden,
		})
		return
	}

	var thread *domain.Thread
	var err error
	if action == "pin" {
		thread, err = h.actions.Pin(postId)
	} else {
		thread, err = h.actions.Unpin(postId)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	pinned := thread.Pinned
	writeJSON(w, api.PostActionResponse{Success: true, Post: api.PostSnapshot{
		Id:        thread.Id,
		Likes:     thread.Likes,
		LikeCount: len(thread.Likes),
		Pinned:    &pinned,
	}})
}
