package service

import (
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/sanitize"
)

type SiteService interface {
	Config() (domain.SiteConfig, error)
	ReplaceConfig(cfg domain.SiteConfig) (domain.SiteConfig, error)
}

type SiteStorage interface {
	SiteConfig() (domain.SiteConfig, error)
	ReplaceSiteConfig(cfg domain.SiteConfig) error
}

type Site struct {
	storage SiteStorage
}

func NewSite(storage SiteStorage) SiteService {
	return &Site{storage}
}

func (s *Site) Config() (domain.SiteConfig, error) {
	return s.storage.SiteConfig()
}

// ReplaceConfig overwrites the whole document. Title is the only
// required field; strings are sanitized, URLs scheme-checked and the
// volume clamped into [0,1].
func (s *Site) ReplaceConfig(cfg domain.SiteConfig) (domain.SiteConfig, error) {
	if cfg.Title == "" {
		return domain.SiteConfig{}, internal_errors.BadRequest("Title is required")
	}

	clean := domain.SiteConfig{
		Title:         sanitize.Input(cfg.Title),
		Description:   sanitize.Input(cfg.Description),
		TokenCA:       sanitize.Input(cfg.TokenCA),
		SocialLinks:   map[string]string{},
		AudioURL:      sanitize.Input(cfg.AudioURL),
		AudioAutoplay: cfg.AudioAutoplay,
		AudioLoop:     cfg.AudioLoop,
		AudioVolume:   clampVolume(cfg.AudioVolume),
	}
	for name, link := range cfg.SocialLinks {
		clean.SocialLinks[sanitize.Input(name)] = sanitize.Input(link)
	}

	if err := s.storage.ReplaceSiteConfig(clean); err != nil {
		return domain.SiteConfig{}, err
	}
	return clean, nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
