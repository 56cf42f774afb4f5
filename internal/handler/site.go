package handler

import (
	"net/http"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

func (h *Handler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.site.Config()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, cfg)
}

func (h *Handler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var body domain.SiteConfig
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	cfg, err := h.site.ReplaceConfig(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.SiteConfigResponse{Success: true, Config: cfg})
}
