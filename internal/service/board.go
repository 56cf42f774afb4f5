package service

import (
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/sanitize"
)

// to mock service in tests
type BoardService interface {
	List() ([]domain.Board, error)
	Create(data domain.BoardCreationData) (domain.Board, error)
	Update(id domain.BoardId, name, description string) (domain.Board, error)
	Delete(id domain.BoardId) error
	Reorder(ids []domain.BoardId) ([]domain.Board, error)
}

type BoardStorage interface {
	Boards() ([]domain.Board, error)
	CreateBoard(board domain.Board) error
	UpdateBoard(id domain.BoardId, name, description string) (domain.Board, error)
	DeleteBoard(id domain.BoardId) error
	ReorderBoards(ids []domain.BoardId) ([]domain.Board, error)
}

type Board struct {
	storage BoardStorage
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) List() ([]domain.Board, error) {
	return b.storage.Boards()
}

func (b *Board) Create(data domain.BoardCreationData) (domain.Board, error) {
	if data.Name == "" || data.Description == "" {
		return domain.Board{}, internal_errors.BadRequest("Name and description are required")
	}

	id := domain.Slug(data.Name)
	if id == "" {
		return domain.Board{}, internal_errors.BadRequest("Board name must contain letters or digits")
	}

	board := domain.Board{
		Id:          id,
		Name:        sanitize.Input(data.Name),
		Description: sanitize.Input(data.Description),
		Created:     domain.NowMillis(),
		Admin:       true,
	}

	if err := b.storage.CreateBoard(board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (b *Board) Update(id domain.BoardId, name, description string) (domain.Board, error) {
	if name == "" || description == "" {
		return domain.Board{}, internal_errors.BadRequest("Name and description are required")
	}
	return b.storage.UpdateBoard(id, sanitize.Input(name), sanitize.Input(description))
}

func (b *Board) Delete(id domain.BoardId) error {
	return b.storage.DeleteBoard(id)
}

func (b *Board) Reorder(ids []domain.BoardId) ([]domain.Board, error) {
	return b.storage.ReorderBoards(ids)
}
