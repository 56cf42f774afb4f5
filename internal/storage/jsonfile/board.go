package jsonfile

import (
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
)

func (s *Storage) Boards() ([]domain.Board, error) {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return nil, err
	}
	return doc.Boards, nil
}

func (s *Storage) CreateBoard(board domain.Board) error {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return err
	}

	for _, b := range doc.Boards {
		if b.Id == board.Id {
			return internal_errors.BadRequest("Board already exists")
		}
	}

	doc.Boards = append(doc.Boards, board)
	return s.write(boardsFile, doc)
}

// UpdateBoard replaces name and description only; id and created survive.
func (s *Storage) UpdateBoard(id domain.BoardId, name, description string) (domain.Board, error) {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return domain.Board{}, err
	}

	for i := range doc.Boards {
		if doc.Boards[i].Id == id {
			doc.Boards[i].Name = name
			doc.Boards[i].Description = description
			if err := s.write(boardsFile, doc); err != nil {
				return domain.Board{}, err
			}
			return doc.Boards[i], nil
		}
	}
	return domain.Board{}, internal_errors.NotFound("Board not found")
}

// DeleteBoard removes the board and cascades into the posts document:
// every thread on the board and every reply under those threads goes too.
func (s *Storage) DeleteBoard(id domain.BoardId) error {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return err
	}

	found := false
	kept := doc.Boards[:0]
	for _, b := range doc.Boards {
		if b.Id == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return internal_errors.NotFound("Board not found")
	}
	doc.Boards = kept

	if err := s.write(boardsFile, doc); err != nil {
		return err
	}

	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	var posts postsDoc
	if err := s.read(postsFile, &posts); err != nil {
		return err
	}

	for _, t := range posts.Threads[id] {
		delete(posts.Replies, t.Id)
	}
	delete(posts.Threads, id)

	return s.write(postsFile, posts)
}

// ReorderBoards rebuilds the collection in the requested order. Stored
// boards missing from ids are appended at the end so nothing is silently
// lost; unknown ids are ignored.
func (s *Storage) ReorderBoards(ids []domain.BoardId) ([]domain.Board, error) {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return nil, err
	}

	byId := make(map[domain.BoardId]domain.Board, len(doc.Boards))
	for _, b := range doc.Boards {
		byId[b.Id] = b
	}

	reordered := make([]domain.Board, 0, len(doc.Boards))
	seen := make(map[domain.BoardId]bool, len(ids))
	for _, id := range ids {
		if b, ok := byId[id]; ok && !seen[id] {
			reordered = append(reordered, b)
			seen[id] = true
		}
	}
	for _, b := range doc.Boards {
		if !seen[b.Id] {
			reordered = append(reordered, b)
		}
	}

	doc.Boards = reordered
	if err := s.write(boardsFile, doc); err != nil {
		return nil, err
	}
	return doc.Boards, nil
}

// BoardExists backs the referential check on thread creation.
func (s *Storage) BoardExists(id domain.BoardId) (bool, error) {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	var doc boardsDoc
	if err := s.read(boardsFile, &doc); err != nil {
		return false, err
	}
	for _, b := range doc.Boards {
		if b.Id == id {
			return true, nil
		}
	}
	return false, nil
}
