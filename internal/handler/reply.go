package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	var body api.CreateReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.replies.Create(domain.ReplyCreationData{
		Thread:   threadId,
		Content:  body.Content,
		Author:   body.Author,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ReplyCreatedResponse{Success: true, Reply: reply})
}

func (h *Handler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	replyId := chi.URLParam(r, "replyId")

	var body api.UpdateReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.replies.Update(replyId, domain.PostUpdateData{
		Content:  body.Content,
		Author:   body.Author,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ReplyCreatedResponse{Success: true, Reply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	replyId := chi.URLParam(r, "replyId")

	if err := h.replies.Delete(replyId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}
