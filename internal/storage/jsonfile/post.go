package jsonfile

import (
	"sort"

	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
)

// ThreadsByBoard returns the board's threads, pinned first, otherwise in
// stored order (newest first, since creation prepends).
func (s *Storage) ThreadsByBoard(boardId domain.BoardId) ([]*domain.Thread, error) {
	exists, err := s.BoardExists(boardId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal_errors.NotFound("Board not found")
	}

	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, err
	}

	threads := doc.Threads[boardId]
	if threads == nil {
		return []*domain.Thread{}, nil
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].Pinned && !threads[j].Pinned
	})
	return threads, nil
}

func (s *Storage) CreateThread(thread *domain.Thread) error {
	exists, err := s.BoardExists(thread.BoardId)
	if err != nil {
		return err
	}
	if !exists {
		return internal_errors.NotFound("Board not found")
	}

	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return err
	}

	// newest-first ordering
	doc.Threads[thread.BoardId] = append([]*domain.Thread{thread}, doc.Threads[thread.BoardId]...)
	return s.write(postsFile, doc)
}

// GetThread locates the thread by linear scan across all boards and
// returns it with its replies in chronological order.
func (s *Storage) GetThread(threadId domain.ThreadId) (*domain.Thread, []*domain.Reply, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, nil, err
	}

	thread := findThread(&doc, threadId)
	if thread == nil {
		return nil, nil, internal_errors.NotFound("Thread not found")
	}

	replies := doc.Replies[threadId]
	if replies == nil {
		replies = []*domain.Reply{}
	}
	return thread, replies, nil
}

func (s *Storage) UpdateThread(threadId domain.ThreadId, upd domain.PostUpdateData) (*domain.Thread, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, err
	}

	thread := findThread(&doc, threadId)
	if thread == nil {
		return nil, internal_errors.NotFound("Thread not found")
	}

	now := domain.NowMillis()
	thread.Title = upd.Title
	thread.Content = upd.Content
	thread.Author = upd.Author
	thread.ImageURL = upd.ImageURL
	thread.UpdatedAt = &now

	if err := s.write(postsFile, doc); err != nil {
		return nil, err
	}
	return thread, nil
}

// DeleteThread removes the thread and purges its reply bucket.
func (s *Storage) DeleteThread(threadId domain.ThreadId) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return err
	}

	found := false
	for boardId, threads := range doc.Threads {
		for i, t := range threads {
			if t.Id == threadId {
				doc.Threads[boardId] = append(threads[:i], threads[i+1:]...)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return internal_errors.NotFound("Thread not found")
	}

	delete(doc.Replies, threadId)
	return s.write(postsFile, doc)
}

func (s *Storage) CreateReply(reply *domain.Reply) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return err
	}

	thread := findThread(&doc, reply.ThreadId)
	if thread == nil {
		return internal_errors.NotFound("Thread not found")
	}

	// chronological ordering, and the denormalized counter stays in sync
	doc.Replies[reply.ThreadId] = append(doc.Replies[reply.ThreadId], reply)
	thread.ReplyCount++

	return s.write(postsFile, doc)
}

func (s *Storage) UpdateReply(replyId domain.ReplyId, upd domain.PostUpdateData) (*domain.Reply, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, err
	}

	reply, _ := findReply(&doc, replyId)
	if reply == nil {
		return nil, internal_errors.NotFound("Reply not found")
	}

	now := domain.NowMillis()
	reply.Content = upd.Content
	reply.Author = upd.Author
	reply.ImageURL = upd.ImageURL
	reply.UpdatedAt = &now

	if err := s.write(postsFile, doc); err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteReply also decrements the parent thread's counter, floored at 0.
func (s *Storage) DeleteReply(replyId domain.ReplyId) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return err
	}

	var threadId domain.ThreadId
	found := false
	for tid, replies := range doc.Replies {
		for i, r := range replies {
			if r.Id == replyId {
				doc.Replies[tid] = append(replies[:i], replies[i+1:]...)
				threadId = tid
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return internal_errors.NotFound("Reply not found")
	}

	if thread := findThread(&doc, threadId); thread != nil && thread.ReplyCount > 0 {
		thread.ReplyCount--
	}

	return s.write(postsFile, doc)
}

// MutatePostLikes applies fn to the like set of the addressed post and
// persists the result. fn receives the current set and returns the new one.
func (s *Storage) MutatePostLikes(id string, fn func([]domain.ClientId) []domain.ClientId) (*domain.LikeTarget, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, err
	}

	target, err := findPost(&doc, id)
	if err != nil {
		return nil, err
	}

	if target.Thread != nil {
		target.Thread.Likes = fn(target.Thread.Likes)
	} else {
		target.Reply.Likes = fn(target.Reply.Likes)
	}

	if err := s.write(postsFile, doc); err != nil {
		return nil, err
	}
	return target, nil
}

// SetThreadPinned flips the pinned flag. Only threads can be pinned;
// addressing a reply id is a not-found, matching the action semantics.
func (s *Storage) SetThreadPinned(threadId domain.ThreadId, pinned bool) (*domain.Thread, error) {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var doc postsDoc
	if err := s.read(postsFile, &doc); err != nil {
		return nil, err
	}

	thread := findThread(&doc, threadId)
	if thread == nil {
		return nil, internal_errors.NotFound("Thread not found")
	}

	thread.Pinned = pinned
	if err := s.write(postsFile, doc); err != nil {
		return nil, err
	}
	return thread, nil
}

func findThread(doc *postsDoc, threadId domain.ThreadId) *domain.Thread {
	for _, threads := range doc.Threads {
		for _, t := range threads {
			if t.Id == threadId {
				return t
			}
		}
	}
	return nil
}

func findReply(doc *postsDoc, replyId domain.ReplyId) (*domain.Reply, domain.ThreadId) {
	for tid, replies := range doc.Replies {
		for _, r := range replies {
			if r.Id == replyId {
				return r, tid
			}
		}
	}
	return nil, ""
}

func findPost(doc *postsDoc, id string) (*domain.LikeTarget, error) {
	if thread := findThread(doc, id); thread != nil {
		return &domain.LikeTarget{Thread: thread}, nil
	}
	if reply, _ := findReply(doc, id); reply != nil {
		return &domain.LikeTarget{Reply: reply}, nil
	}
	return nil, internal_errors.NotFound("Post not found")
}
