package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nullchan-dev/nullchan/internal/config"
	"github.com/nullchan-dev/nullchan/internal/logger"
	"github.com/nullchan-dev/nullchan/internal/service"
)

type Handler struct {
	auth      service.AuthService
	boards    service.BoardService
	threads   service.ThreadService
	replies   service.ReplyService
	actions   service.PostActionService
	site      service.SiteService
	infoPosts service.InfoPostService
	cfg       *config.Config
}

func New(
	auth service.AuthService,
	boards service.BoardService,
	threads service.ThreadService,
	replies service.ReplyService,
	actions service.PostActionService,
	site service.SiteService,
	infoPosts service.InfoPostService,
	cfg *config.Config,
) *Handler {
	return &Handler{auth, boards, threads, replies, actions, site, infoPosts, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
