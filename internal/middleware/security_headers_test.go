package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("baseline headers with CSP", func(t *testing.T) {
		handler := SecurityHeaders(false, "default-src 'none'")(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/boards", nil))

		assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", rr.Header().Get("Referrer-Policy"))
		assert.Equal(t, "default-src 'none'", rr.Header().Get("Content-Security-Policy"))
		assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
	})

	t.Run("empty CSP sets no header", func(t *testing.T) {
		handler := SecurityHeaders(false, "")(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/boards", nil))

		assert.Empty(t, rr.Header().Get("Content-Security-Policy"))
	})

	t.Run("HSTS only over HTTPS", func(t *testing.T) {
		handler := SecurityHeaders(true, "")(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/boards", nil))

		assert.Contains(t, rr.Header().Get("Strict-Transport-Security"), "max-age=")
	})
}
