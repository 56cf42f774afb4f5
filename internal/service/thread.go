package service

import (
	"github.com/google/uuid"

	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/sanitize"
	"github.com/nullchan-dev/nullchan/internal/validation"
)

type ThreadService interface {
	ListByBoard(boardId domain.BoardId) ([]*domain.Thread, error)
	Create(data domain.ThreadCreationData) (*domain.Thread, error)
	Get(threadId domain.ThreadId) (*domain.Thread, []*domain.Reply, error)
	Update(threadId domain.ThreadId, upd domain.PostUpdateData) (*domain.Thread, error)
	Delete(threadId domain.ThreadId) error
}

type ThreadStorage interface {
	ThreadsByBoard(boardId domain.BoardId) ([]*domain.Thread, error)
	CreateThread(thread *domain.Thread) error
	GetThread(threadId domain.ThreadId) (*domain.Thread, []*domain.Reply, error)
	UpdateThread(threadId domain.ThreadId, upd domain.PostUpdateData) (*domain.Thread, error)
	DeleteThread(threadId domain.ThreadId) error
}

type Thread struct {
	storage ThreadStorage
}

func NewThread(storage ThreadStorage) ThreadService {
	return &Thread{storage}
}

func (t *Thread) ListByBoard(boardId domain.BoardId) ([]*domain.Thread, error) {
	return t.storage.ThreadsByBoard(boardId)
}

func (t *Thread) Create(data domain.ThreadCreationData) (*domain.Thread, error) {
	fields := validation.PostFields{Title: data.Title, Content: data.Content, Author: data.Author, ImageURL: data.ImageURL}
	if errs := validation.Post(fields, true); len(errs) > 0 {
		return nil, &internal_errors.ValidationError{Violations: errs}
	}

	author := sanitize.Input(data.Author)
	if author == "" {
		author = "Anonymous"
	}

	thread := &domain.Thread{
		Id:         uuid.NewString(),
		BoardId:    data.Board,
		Title:      sanitize.Input(data.Title),
		Content:    sanitize.Input(data.Content),
		Author:     author,
		ImageURL:   sanitize.URL(data.ImageURL),
		Timestamp:  domain.NowMillis(),
		Likes:      []domain.ClientId{},
		ReplyCount: 0,
	}

	if err := t.storage.CreateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (t *Thread) Get(threadId domain.ThreadId) (*domain.Thread, []*domain.Reply, error) {
	return t.storage.GetThread(threadId)
}

func (t *Thread) Update(threadId domain.ThreadId, upd domain.PostUpdateData) (*domain.Thread, error) {
	fields := validation.PostFields{Title: upd.Title, Content: upd.Content, Author: upd.Author, ImageURL: upd.ImageURL}
	if errs := validation.Post(fields, true); len(errs) > 0 {
		return nil, &internal_errors.ValidationError{Violations: errs}
	}

	author := sanitize.Input(upd.Author)
	if author == "" {
		author = "Anonymous"
	}

	return t.storage.UpdateThread(threadId, domain.PostUpdateData{
		Title:    sanitize.Input(upd.Title),
		Content:  sanitize.Input(upd.Content),
		Author:   author,
		ImageURL: sanitize.URL(upd.ImageURL),
	})
}

func (t *Thread) Delete(threadId domain.ThreadId) error {
	return t.storage.DeleteThread(threadId)
}
