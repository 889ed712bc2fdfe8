package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "tambula/internal/pkg/errors"
	"tambula/internal/pkg/jwt"
	"tambula/internal/repo"
	"tambula/internal/testutil"
)

var testSecret = []byte("test-secret")

func randomSuffix() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	auth := NewAuthService(repo.NewUserRepo(conn), testSecret)
	ctx := context.Background()

	suffix := randomSuffix()
	username := "alice-" + suffix
	email := fmt.Sprintf("alice-%s@example.com", suffix)
	require.NoError(t, auth.Register(ctx, username, "secret1", email, "Alice"))

	token, err := auth.Login(ctx, username, "secret1")
	require.NoError(t, err)

	claims, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, username, claims.Username)
}

func TestAuthServiceRegisterDuplicate(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	auth := NewAuthService(repo.NewUserRepo(conn), testSecret)
	ctx := context.Background()

	suffix := randomSuffix()
	username := "bob-" + suffix
	email := fmt.Sprintf("bob-%s@example.com", suffix)
	require.NoError(t, auth.Register(ctx, username, "secret1", email, "Bob"))
	require.ErrorIs(t, auth.Register(ctx, username, "secret1", email, "Bob"), appErr.ErrConflict)
}

func TestAuthServiceLoginUniformFailure(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	auth := NewAuthService(repo.NewUserRepo(conn), testSecret)
	ctx := context.Background()

	suffix := randomSuffix()
	username := "carol-" + suffix
	email := fmt.Sprintf("carol-%s@example.com", suffix)
	require.NoError(t, auth.Register(ctx, username, "secret1", email, "Carol"))

	// Wrong password and unknown user collapse to the same error.
	_, wrongPass := auth.Login(ctx, username, "wrong-password")
	_, unknownUser := auth.Login(ctx, "nobody-"+suffix, "secret1")
	require.ErrorIs(t, wrongPass, appErr.ErrUnauthorized)
	require.ErrorIs(t, unknownUser, appErr.ErrUnauthorized)
	require.Equal(t, wrongPass, unknownUser)
}
