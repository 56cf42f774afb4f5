// Package api holds the request and response DTOs of the REST surface.
// Field names mirror the JSON documents the browser client exchanges.
package api

import "github.com/nullchan-dev/nullchan/internal/domain"

// Request DTOs

type CreateBoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateBoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReorderBoardsRequest struct {
	BoardIds []string `json:"boardIds" validate:"required"`
}

type CreateThreadRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}

type UpdateThreadRequest = CreateThreadRequest

type CreateReplyRequest struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}

type UpdateReplyRequest = CreateReplyRequest

type CreateInfoPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Response DTOs

type BoardsResponse struct {
	Boards []domain.Board `json:"boards"`
}

type BoardResponse struct {
	Success bool         `json:"success"`
	Board   domain.Board `json:"board"`
}

type ReorderBoardsResponse struct {
	Success bool           `json:"success"`
	Boards  []domain.Board `json:"boards"`
}

type ThreadsResponse struct {
	Threads []*domain.Thread `json:"threads"`
}

type ThreadCreatedResponse struct {
	Success bool           `json:"success"`
	Thread  *domain.Thread `json:"thread"`
}

type ThreadResponse struct {
	Thread  *domain.Thread  `json:"thread"`
	Replies []*domain.Reply `json:"replies"`
}

type ReplyCreatedResponse struct {
	Success bool          `json:"success"`
	Reply   *domain.Reply `json:"reply"`
}

// PostSnapshot is the slice of a post returned after a like/pin action,
// enough for the client to update counts in place.
type PostSnapshot struct {
	Id        string            `json:"id"`
	Likes     []domain.ClientId `json:"likes"`
	LikeCount int               `json:"likeCount"`
	Pinned    *bool             `json:"pinned,omitempty"`
}

type PostActionResponse struct {
	Success bool         `json:"success"`
	Post    PostSnapshot `json:"post"`
}

type InfoPostsResponse struct {
	Posts []domain.InfoPost `json:"posts"`
}

type InfoPostCreatedResponse struct {
	Success bool            `json:"success"`
	Post    domain.InfoPost `json:"post"`
}

type SiteConfigResponse struct {
	Success bool              `json:"success"`
	Config  domain.SiteConfig `json:"config"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
