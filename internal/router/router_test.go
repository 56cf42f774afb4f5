package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullchan-dev/nullchan/internal/api"
	"github.com/nullchan-dev/nullchan/internal/config"
	"github.com/nullchan-dev/nullchan/internal/domain"
	"github.com/nullchan-dev/nullchan/internal/setup"
)

// startServer boots the full stack against a throwaway data dir.
func startServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	require.NoError(t, os.Mkdir(configDir, 0o755))

	public := "data_dir: " + filepath.Join(dir, "data") + "\nsession_ttl: 1h\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "public.yaml"), []byte(public), 0o644))
	private := "jwt_key: test_secret\nadmin_password: admin123\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "private.yaml"), []byte(private), 0o644))

	cfg := config.MustLoad(configDir)
	deps, err := setup.SetupDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(deps.Cleanup)

	srv := httptest.NewServer(New(deps))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return srv, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func login(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/admin/login", map[string]string{"password": "admin123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthAndSeededData(t *testing.T) {
	srv, client := startServer(t)

	resp, err := client.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	var health api.HealthResponse
	decodeBody(t, resp, &health)
	assert.Equal(t, "OK", health.Status)

	resp, err = client.Get(srv.URL + "/api/boards")
	require.NoError(t, err)
	var boards api.BoardsResponse
	decodeBody(t, resp, &boards)
	assert.NotEmpty(t, boards.Boards, "fresh data dir is seeded with default boards")
}

func TestAdminGating(t *testing.T) {
	srv, client := startServer(t)

	t.Run("mutations need a session", func(t *testing.T) {
		resp := postJSON(t, client, srv.URL+"/api/boards", map[string]string{"name": "X", "description": "y"})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		resp := postJSON(t, client, srv.URL+"/api/admin/login", map[string]string{"password": "nope"})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("after login the same mutation succeeds", func(t *testing.T) {
		login(t, client, srv.URL)

		resp := postJSON(t, client, srv.URL+"/api/boards", map[string]string{"name": "Tech Talk", "description": "stuff"})
		var created api.BoardResponse
		decodeBody(t, resp, &created)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "techtalk", created.Board.Id)

		// duplicate
		resp = postJSON(t, client, srv.URL+"/api/boards", map[string]string{"name": "Tech Talk", "description": "stuff"})
		var dup map[string]string
		decodeBody(t, resp, &dup)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Board already exists", dup["error"])
	})

	t.Run("logout drops the session", func(t *testing.T) {
		resp := postJSON(t, client, srv.URL+"/api/admin/logout", nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = postJSON(t, client, srv.URL+"/api/boards", map[string]string{"name": "Another", "description": "x"})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLikeRoundTrip(t *testing.T) {
	srv, client := startServer(t)
	login(t, client, srv.URL)

	var boards api.BoardsResponse
	resp, err := client.Get(srv.URL + "/api/boards")
	require.NoError(t, err)
	decodeBody(t, resp, &boards)
	boardId := boards.Boards[0].Id

	resp = postJSON(t, client, srv.URL+"/api/boards/"+boardId+"/threads", map[string]string{
		"title": "hello", "content": "world",
	})
	var created api.ThreadCreatedResponse
	decodeBody(t, resp, &created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	threadId := created.Thread.Id

	// like twice from the same client: idempotent
	for i := 0; i < 2; i++ {
		resp = postJSON(t, client, srv.URL+"/api/posts/"+threadId+"/like", nil)
		var action api.PostActionResponse
		decodeBody(t, resp, &action)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, action.Post.LikeCount)
	}

	// unlike returns to the pre-like value
	resp = postJSON(t, client, srv.URL+"/api/posts/"+threadId+"/unlike", nil)
	var action api.PostActionResponse
	decodeBody(t, resp, &action)
	assert.Equal(t, 0, action.Post.LikeCount)
}

func TestConfigRoundTrip(t *testing.T) {
	srv, client := startServer(t)
	login(t, client, srv.URL)

	doc := domain.SiteConfig{
		Title:       "nullchan",
		Description: "totally anonymous",
		SocialLinks: map[string]string{"twitter": "https://x.com/nullchan"},
		AudioURL:    "/theme.mp3",
		AudioVolume: 0.3,
	}

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/config", bytes.NewReader(mustMarshal(t, doc)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/api/config")
	require.NoError(t, err)
	var got domain.SiteConfig
	decodeBody(t, resp, &got)
	assert.Equal(t, doc, got)
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
