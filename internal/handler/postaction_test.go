package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/domain"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/middleware"
	"github.com/nullchan-dev/nullchan/internal/session"
)

type MockPostActionService struct {
	MockLike   func(postId string, client domain.ClientId) (*domain.LikeTarget, error)
	MockUnlike func(postId string, client domain.ClientId) (*domain.LikeTarget, error)
	MockPin    func(threadId domain.ThreadId) (*domain.Thread, error)
	MockUnpin  func(threadId domain.ThreadId) (*domain.Thread, error)
}

func (m *MockPostActionService) Like(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
	if m.MockLike != nil {
		return m.MockLike(postId, client)
	}
	return nil, nil
}

func (m *MockPostActionService) Unlike(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
	if m.MockUnlike != nil {
		return m.MockUnlike(postId, client)
	}
	return nil, nil
}

func (m *MockPostActionService) Pin(threadId domain.ThreadId) (*domain.Thread, error) {
	if m.MockPin != nil {
		return m.MockPin(threadId)
	}
	return nil, nil
}

func (m *MockPostActionService) Unpin(threadId domain.ThreadId) (*domain.Thread, error) {
	if m.MockUnpin != nil {
		return m.MockUnpin(threadId)
	}
	return nil, nil
}

// newPostActionRouter mirrors the production chain: client identity and
// optional admin context run before the action handler.
func newPostActionRouter(h *Handler, sessions session.Service) *chi.Mux {
	authMw := middleware.NewAuth(sessions, false)
	router := chi.NewRouter()
	router.With(authMw.ClientIdentity(), authMw.OptionalAdmin()).
		Post("/api/posts/{id}/{action}", h.PostAction)
	return router
}

func TestPostActionLike(t *testing.T) {
	sessions := session.New("test_secret", time.Hour)
	h := &Handler{}
	router := newPostActionRouter(h, sessions)

	clientToken, err := sessions.NewClientToken("cid-1")
	require.NoError(t, err)

	t.Run("like uses the cookie identity", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockLike: func(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
				assert.Equal(t, "p1", postId)
				assert.Equal(t, "cid-1", client)
				return &domain.LikeTarget{Thread: &domain.Thread{Id: postId, Likes: []domain.ClientId{client}}}, nil
			},
		}

		req := httptest.NewRequest("POST", "/api/posts/p1/like", nil)
		req.AddCookie(&http.Cookie{Name: "clientToken", Value: clientToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.PostActionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "p1", resp.Post.Id)
		assert.Equal(t, 1, resp.Post.LikeCount)
		assert.Nil(t, resp.Post.Pinned)
	})

	t.Run("first-time visitors still get an identity", func(t *testing.T) {
		var seen domain.ClientId
		h.actions = &MockPostActionService{
			MockLike: func(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
				seen = client
				return &domain.LikeTarget{Reply: &domain.Reply{Id: postId, Likes: []domain.ClientId{client}}}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/posts/r1/like", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, seen)
	})

	t.Run("unlike on unknown post", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockUnlike: func(postId string, client domain.ClientId) (*domain.LikeTarget, error) {
				return nil, internal_errors.NotFound("Post not found")
			},
		}

		req := httptest.NewRequest("POST", "/api/posts/missing/unlike", nil)
		req.AddCookie(&http.Cookie{Name: "clientToken", Value: clientToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid action", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/posts/p1/boost", nil)
		req.AddCookie(&http.Cookie{Name: "clientToken", Value: clientToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid action", resp["error"])
	})
}

func TestPostActionPin(t *testing.T) {
	sessions := session.New("test_secret", time.Hour)
	h := &Handler{}
	router := newPostActionRouter(h, sessions)

	adminToken, err := sessions.NewAdminToken()
	require.NoError(t, err)

	t.Run("admin can pin", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockPin: func(threadId domain.ThreadId) (*domain.Thread, error) {
				return &domain.Thread{Id: threadId, Pinned: true, Likes: []domain.ClientId{}}, nil
			},
		}

		req := httptest.NewRequest("POST", "/api/posts/t1/pin", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.PostActionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.Post.Pinned)
		assert.True(t, *resp.Post.Pinned)
	})

	t.Run("unpin", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockUnpin: func(threadId domain.ThreadId) (*domain.Thread, error) {
				return &domain.Thread{Id: threadId, Pinned: false, Likes: []domain.ClientId{}}, nil
			},
		}

		req := httptest.NewRequest("POST", "/api/posts/t1/unpin", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("anonymous pin is rejected", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockPin: func(threadId domain.ThreadId) (*domain.Thread, error) {
				t.Fatal("service must not be reached")
				return nil, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/posts/t1/pin", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("pin on a reply id", func(t *testing.T) {
		h.actions = &MockPostActionService{
			MockPin: func(threadId domain.ThreadId) (*domain.Thread, error) {
				return nil, internal_errors.NotFound("Thread not found")
			},
		}

		req := httptest.NewRequest("POST", "/api/posts/r1/pin", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
