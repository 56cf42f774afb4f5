package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/logger"
	"github.com/nullchan-dev/nullchan/internal/session"
	"github.com/nullchan-dev/nullchan/internal/utils"
)

// Keys for values stored in the request context
type key int

const (
	adminClaimsKey key = iota
	clientIdKey
)

// Auth holds dependencies for authentication and client identity middleware
type Auth struct {
	sessions      session.Service
	secureCookies bool
}

func NewAuth(sessions session.Service, secureCookies bool) *Auth {
	return &Auth{sessions: sessions, secureCookies: secureCookies}
}

// AdminOnly returns middleware that rejects requests without a valid admin token
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := a.extractToken(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !session.IsAdmin(token) {
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{
					Message: "Access denied. Only for admin", StatusCode: http.StatusForbidden,
				})
				return
			}
			ctx := context.WithValue(r.Context(), adminClaimsKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the access token from the cookie (browser clients)
// or the Authorization header (API clients) and verifies it.
func (a *Auth) extractToken(r *http.Request) (*jwt.Token, error) {
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errors.Unauthorized("Please sign-in")
	}
	return a.sessions.DecodeToken(tokenString)
}

// OptionalAdmin marks the request as admin when a valid admin token is
// present, without requiring one. Used on routes that mix public and
// admin actions.
func (a *Auth) OptionalAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := a.extractToken(r)
			if err == nil && session.IsAdmin(token) {
				ctx := context.WithValue(r.Context(), adminClaimsKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdminRequest reports whether AdminOnly already admitted this request.
func IsAdminRequest(r *http.Request) bool {
	admin, _ := r.Context().Value(adminClaimsKey).(bool)
	return admin
}

// ClientIdentity gives every visitor a stable signed id so likes stick
// to the same browser across requests. A missing or tampered cookie is
// replaced with a fresh identity rather than rejected.
func (a *Auth) ClientIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientId := a.clientIdFromCookie(r)
			if clientId == "" {
				clientId = uuid.NewString()
				tokenString, err := a.sessions.NewClientToken(clientId)
				if err != nil {
					logger.Log.Error("minting client token", "err", err)
					next.ServeHTTP(w, r)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Path:     "/",
					Name:     "clientToken",
					Value:    tokenString,
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					Secure:   a.secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), clientIdKey, clientId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) clientIdFromCookie(r *http.Request) string {
	cookie, err := r.Cookie("clientToken")
	if err != nil {
		return ""
	}
	token, err := a.sessions.DecodeToken(cookie.Value)
	if err != nil {
		return ""
	}
	return session.ClientId(token)
}

// GetClientId retrieves the visitor id set by ClientIdentity, or "".
func GetClientId(r *http.Request) string {
	clientId, _ := r.Context().Value(clientIdKey).(string)
	return clientId
}
