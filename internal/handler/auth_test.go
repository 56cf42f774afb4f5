package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/config"
	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
)

type MockAuthService struct {
	MockLogin func(password string) (string, error)
}

func (m *MockAuthService) Login(password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(password)
	}
	return "", nil
}

func newAuthRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/api/admin/login", h.Login)
	router.Post("/api/admin/logout", h.Logout)
	return router
}

func TestLoginHandler(t *testing.T) {
	h := &Handler{cfg: &config.Config{Public: config.Public{SessionTTL: time.Hour}}}
	router := newAuthRouter(h)

	t.Run("successful login sets the access cookie", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(password string) (string, error) {
				assert.Equal(t, "admin123", password)
				return "signed-token", nil
			},
		}

		body := []byte(`{"password": "admin123"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Login successful", resp.Message)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)
	})

	t.Run("wrong password", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(password string) (string, error) {
				return "", internal_errors.Unauthorized("Invalid password")
			},
		}

		body := []byte(`{"password": "nope"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid password", resp["error"])
	})

	t.Run("missing password", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(password string) (string, error) {
				return "", internal_errors.BadRequest("Password required")
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/login", bytes.NewBuffer([]byte(`{}`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := &Handler{cfg: &config.Config{}}
	router := newAuthRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/admin/logout", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHealthHandler(t *testing.T) {
	h := &Handler{}

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "OK", resp.Status)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}
