package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/session"
)

type AuthService interface {
	Login(password string) (string, error)
}

type Auth struct {
	adminPassword string
	sessions      session.Service
}

func NewAuth(adminPassword string, sessions session.Service) AuthService {
	return &Auth{adminPassword, sessions}
}

// Login checks the shared admin password and mints an access token.
// The configured value may be a bcrypt hash or, for parity with the
// original deployment, a plaintext password.
func (a *Auth) Login(password string) (string, error) {
	if password == "" {
		return "", internal_errors.BadRequest("Password required")
	}

	if !a.verify(password) {
		return "", internal_errors.Unauthorized("Invalid password")
	}

	return a.sessions.NewAdminToken()
}

func (a *Auth) verify(password string) bool {
	if isBcryptHash(a.adminPassword) {
		return bcrypt.CompareHashAndPassword([]byte(a.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.adminPassword), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
