package service

import (
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
)

// PostActionService covers the /posts/{id}/{action} surface: likes apply
// to threads and replies alike, pinning only to threads.
type PostActionService interface {
	Like(postId string, client domain.ClientId) (*domain.LikeTarget, error)
	Unlike(postId string, client domain.ClientId) (*domain.LikeTarget, error)
	Pin(threadId domain.ThreadId) (*domain.Thread, error)
	Unpin(threadId domain.ThreadId) (*domain.Thread, error)
}

type PostActionStorage interface {
	MutatePostLikes(id string, fn func([]domain.ClientId) []domain.ClientId) (*domain.LikeTarget, error)
	SetThreadPinned(threadId domain.ThreadId, pinned bool) (*domain.Thread, error)
}

type PostAction struct {
	storage PostActionStorage
}

func NewPostAction(storage PostActionStorage) PostActionService {
	return &PostAction{storage}
}

// Like is idempotent set-membership: liking twice from the same client
// leaves a single entry, so retries cannot inflate the count.
func (p *PostAction) Like(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
	if client == "" {
		return nil, internal_errors.BadRequest("Client identity required")
	}
	return p.storage.MutatePostLikes(postId, func(likes []domain.ClientId) []domain.ClientId {
		for _, c := range likes {
			if c == client {
				return likes
			}
		}
		return append(likes, client)
	})
}

// Unlike without a prior like is a tolerated no-op.
func (p *PostAction) Unlike(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
	if client == "" {
		return nil, internal_errors.BadRequest("Client identity required")
	}
	return p.storage.MutatePostLikes(postId, func(likes []domain.ClientId) []domain.ClientId {
		kept := likes[:0]
		for _, c := range likes {
			if c != client {
				kept = append(kept, c)
			}
		}
		return kept
	})
}

func (p *PostAction) Pin(threadId domain.ThreadId) (*domain.Thread, error) {
	return p.storage.SetThreadPinned(threadId, true)
}

func (p *PostAction) Unpin(threadId domain.ThreadId) (*domain.Thread, error) {
	return p.storage.SetThreadPinned(threadId, false)
}
