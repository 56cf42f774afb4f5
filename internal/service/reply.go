package service

import (
	"github.com/google/uuid"

	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/sanitize"
	"github.com/nullchan-dev/nullchan/internal/validation"
)

type ReplyService interface {
	Create(data domain.ReplyCreationData) (*domain.Reply, error)
	Update(replyId domain.ReplyId, upd domain.PostUpdateData) (*domain.Reply, error)
	Delete(replyId domain.ReplyId) error
}

type ReplyStorage interface {
	CreateReply(reply *domain.Reply) error
	UpdateReply(replyId domain.ReplyId, upd domain.PostUpdateData) (*domain.Reply, error)
	DeleteReply(replyId domain.ReplyId) error
}

type ReplySvc struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) ReplyService {
	return &ReplySvc{storage}
}

func (s *ReplySvc) Create(data domain.ReplyCreationData) (*domain.Reply, error) {
	fields := validation.PostFields{Content: data.Content, Author: data.Author, ImageURL: data.ImageURL}
	if errs := validation.Post(fields, false); len(errs) > 0 {
		return nil, &internal_errors.ValidationError{Violations: errs}
	}

	author := sanitize.Input(data.Author)
	if author == "" {
		author = "Anonymous"
	}

	reply := &domain.Reply{
		Id:        uuid.NewString(),
		ThreadId:  data.Thread,
		Content:   sanitize.Input(data.Content),
		Author:    author,
		ImageURL:  sanitize.URL(data.ImageURL),
		Timestamp: domain.NowMillis(),
		Likes:     []domain.ClientId{},
	}

	if err := s.storage.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ReplySvc) Update(replyId domain.ReplyId, upd domain.PostUpdateData) (*domain.Reply, error) {
	fields := validation.PostFields{Content: upd.Content, Author: upd.Author, ImageURL: upd.ImageURL}
	if errs := validation.Post(fields, false); len(errs) > 0 {
		return nil, &internal_errors.ValidationError{Violations: errs}
	}

	author := sanitize.Input(upd.Author)
	if author == "" {
		author = "Anonymous"
	}

	return s.storage.UpdateReply(replyId, domain.PostUpdateData{
		Content:  sanitize.Input(upd.Content),
		Author:   author,
		ImageURL: sanitize.URL(upd.ImageURL),
	})
}

func (s *ReplySvc) Delete(replyId domain.ReplyId) error {
	return s.storage.DeleteReply(replyId)
}
