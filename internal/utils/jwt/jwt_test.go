package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

func TestTokenRoundtrip(t *testing.T) {
	service := New("secret", time.Hour)

	token, err := service.NewToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := service.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserId(42), uid)
}

func TestDecodeTokenWrongKey(t *testing.T) {
	token, err := New("secret", time.Hour).NewToken(42)
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).DecodeToken(token)
	assert.True(t, internal_errors.Is[*internal_errors.AuthError](err), "got %v", err)
}

func TestDecodeTokenExpired(t *testing.T) {
	token, err := New("secret", -time.Minute).NewToken(42)
	require.NoError(t, err)

	_, err = New("secret", -time.Minute).DecodeToken(token)
	assert.True(t, internal_errors.Is[*internal_errors.AuthError](err), "got %v", err)
}

func TestDecodeTokenGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).DecodeToken("not.a.token")
	assert.True(t, internal_errors.Is[*internal_errors.AuthError](err), "got %v", err)
}
