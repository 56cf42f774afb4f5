package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boards.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardsResponse{Boards: boards})
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.boards.Create(domain.BoardCreationData{Name: body.Name, Description: body.Description})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardResponse{Success: true, Board: board})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "boardId")

	var body api.UpdateBoardRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.boards.Update(boardId, body.Name, body.Description)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardResponse{Success: true, Board: board})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	boardId := chi.URLParam(r, "boardId")

	if err := h.boards.Delete(boardId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SuccessResponse{Success: true})
}

func (h *Handler) ReorderBoards(w http.ResponseWriter, r *http.Request) {
	var body api.ReorderBoardsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	boards, err := h.boards.Reorder(body.BoardIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ReorderBoardsResponse{Success: true, Boards: boards})
}
