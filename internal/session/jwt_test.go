package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewAdminToken()
	require.NoError(t, err)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)
	assert.True(t, IsAdmin(token))
	assert.Empty(t, ClientId(token))
}

func TestClientTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewClientToken("abc-123")
	require.NoError(t, err)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", ClientId(token))
	assert.False(t, IsAdmin(token))
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	tokenStr, err := New("secret-a", time.Hour).NewAdminToken()
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeRejectsExpired(t *testing.T) {
	tokenStr, err := New("secret", -time.Minute).NewAdminToken()
	require.NoError(t, err)

	_, err = New("secret", time.Hour).DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).DecodeToken("not.a.token")
	assert.Error(t, err)
}
