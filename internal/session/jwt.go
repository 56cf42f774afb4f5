// Package session mints and verifies the two token kinds the API uses:
// admin access tokens (issued on login) and client identity tokens
// (issued to every visitor so likes are keyed by a stable id).
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal_errors "github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/logger"
)

type Service interface {
	NewAdminToken() (string, error)
	NewClientToken(clientId string) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) Service {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(j.ttl).Unix(),
	}
	return j.sign(claims)
}

// NewClientToken carries the stable per-browser id used for like dedup.
// No expiry: the id must survive as long as the cookie does.
func (j *Jwt) NewClientToken(clientId string) (string, error) {
	claims := jwt.MapClaims{
		"cid": clientId,
	}
	return j.sign(claims)
}

func (j *Jwt) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("signing token", "err", err)
		return "", errors.New("Can't create token")
	}
	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return token, nil
}

// IsAdmin reports whether the decoded token carries a truthy admin claim.
func IsAdmin(token *jwt.Token) bool {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, ok := claims["admin"].(bool)
	return ok && admin
}

// ClientId extracts the cid claim, or "" when absent.
func ClientId(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	cid, _ := claims["cid"].(string)
	return cid
}
