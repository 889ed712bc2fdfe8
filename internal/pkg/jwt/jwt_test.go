package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("alice", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	// Tokens carry no expiry on purpose.
	require.Nil(t, claims.ExpiresAt)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", []byte("secret-a"))
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestParseTokenTampered(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("alice", secret)
	require.NoError(t, err)

	_, err = ParseToken(token+"x", secret)
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("test-secret"))
	require.Error(t, err)
}
