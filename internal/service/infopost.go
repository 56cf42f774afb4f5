package service

import (
	"github.com/google/uuid"

	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/sanitize"
)

type InfoPostService interface {
	List() ([]domain.InfoPost, error)
	Create(title, content, imageURL string) (domain.InfoPost, error)
	Delete(id string) error
}

type InfoPostStorage interface {
	InfoPosts() ([]domain.InfoPost, error)
	CreateInfoPost(post domain.InfoPost) error
	DeleteInfoPost(id string) error
}

type InfoPost struct {
	storage InfoPostStorage
}

func NewInfoPost(storage InfoPostStorage) InfoPostService {
	return &InfoPost{storage}
}

func (s *InfoPost) List() ([]domain.InfoPost, error) {
	return s.storage.InfoPosts()
}

func (s *InfoPost) Create(title, content, imageURL string) (domain.InfoPost, error) {
	if title == "" || content == "" {
		return domain.InfoPost{}, internal_errors.BadRequest("Title and content are required")
	}

	post := domain.InfoPost{
		Id:        uuid.NewString(),
		Title:     sanitize.Input(title),
		Content:   sanitize.Input(content),
		ImageURL:  sanitize.URL(imageURL),
		Timestamp: domain.NowMillis(),
	}

	if err := s.storage.CreateInfoPost(post); err != nil {
		return domain.InfoPost{}, err
	}
	return post, nil
}

func (s *InfoPost) Delete(id string) error {
	return s.storage.DeleteInfoPost(id)
}
