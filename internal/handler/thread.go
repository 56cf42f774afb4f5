package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "boardId")

	threads, err := h.threads.ListByBoard(boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadsResponse{Threads: threads})
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "boardId")

	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.threads.Create(domain.ThreadCreationData{
		Board:    boardId,
		Title:    body.Title,
		Content:  body.Content,
		Author:   body.Author,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadCreatedResponse{Success: true, Thread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, replies, err := h.threads.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadResponse{Thread: thread, Replies: replies})
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	var body api.UpdateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.threads.Update(threadId, domain.PostUpdateData{
		Title:    body.Title,
		Content:  body.Content,
		Author:   body.Author,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadCreatedResponse{Success: true, Thread: thread})
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	if err := h.threads.Delete(threadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}
