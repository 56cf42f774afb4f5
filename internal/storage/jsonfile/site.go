package jsonfile

import (
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
)

func (s *Storage) SiteConfig() (domain.SiteConfig, error) {
	s.siteMu.Lock()
	defer s.siteMu.Unlock()

	var cfg domain.SiteConfig
	if err := s.read(siteFile, &cfg); err != nil {
		return domain.SiteConfig{}, err
	}
	return cfg, nil
}

// ReplaceSiteConfig overwrites the whole document. There is no merge.
func (s *Storage) ReplaceSiteConfig(cfg domain.SiteConfig) error {
	s.siteMu.Lock()
	defer s.siteMu.Unlock()

	return s.write(siteFile, cfg)
}

func (s *Storage) InfoPosts() ([]domain.InfoPost, error) {
	s.infoMu.Lock()
	defer s.infoMu.Unlock()

	var doc infoDoc
	if err := s.read(infoFile, &doc); err != nil {
		return nil, err
	}
	return doc.Posts, nil
}

func (s *Storage) CreateInfoPost(post domain.InfoPost) error {
	s.infoMu.Lock()
	defer s.infoMu.Unlock()

	var doc infoDoc
	if err := s.read(infoFile, &doc); err != nil {
		return err
	}

	doc.Posts = append(doc.Posts, post)
	return s.write(infoFile, doc)
}

func (s *Storage) DeleteInfoPost(id string) error {
	s.infoMu.Lock()
	defer s.infoMu.Unlock()

	var doc infoDoc
	if err := s.read(infoFile, &doc); err != nil {
		return err
	}

	for i, p := range doc.Posts {
		if p.Id == id {
			doc.Posts = append(doc.Posts[:i], doc.Posts[i+1:]...)
			return s.write(infoFile, doc)
		}
	}
	return internal_errors.NotFound("Info post not found")
}
