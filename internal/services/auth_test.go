package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectus-hq/connectus-backend/internal/types"
)

func TestHashAndVerifyPassword(t *testing.T) {
	env := newTestEnv(t)

	hash, err := env.auth.HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, env.auth.VerifyPassword("secret-password", hash))
	assert.False(t, env.auth.VerifyPassword("wrong-password", hash))

	_, err = env.auth.HashPassword("")
	assert.Error(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jane Admin", "jane@example.com", types.AuthorityAdmin, true)

	token, err := env.auth.IssueSession(user)
	require.NoError(t, err)

	rd, err := env.auth.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, rd.UserID)
	assert.Equal(t, types.AuthorityAdmin, rd.Authority)
	assert.Equal(t, token, rd.TokenString)
}

func TestValidateSessionFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "John Staff", "john@example.com", types.AuthorityStaff, true)

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not-a-jwt",
		"truncated": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9",
	}
	for name, tokenString := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.auth.ValidateSession(tokenString)
			requireStatus(t, err, http.StatusUnauthorized)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(env.db, env.log, env.users, "another-secret", testSessionTTL, 4)
		token, err := other.IssueSession(user)
		require.NoError(t, err)
		_, err = env.auth.ValidateSession(token)
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewAuthService(env.db, env.log, env.users, testJWTSecret, -time.Minute, 4)
		token, err := expired.IssueSession(user)
		require.NoError(t, err)
		_, err = env.auth.ValidateSession(token)
		requireStatus(t, err, http.StatusUnauthorized)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "Verified Staff", "staff@example.com", types.AuthorityStaff, true)
	env.createUser(t, "Verified Admin", "admin@example.com", types.AuthorityAdmin, true)
	env.createUser(t, "Pending Admin", "pending@example.com", types.AuthorityAdmin, false)

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "nobody@example.com", "password123", false)
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "staff@example.com", "wrong-password", false)
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unverified account", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "pending@example.com", "password123", false)
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("admin gate rejects staff", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "staff@example.com", "password123", true)
		requireStatus(t, err, http.StatusForbidden)
	})

	t.Run("admin gate admits admin", func(t *testing.T) {
		user, token, err := env.auth.Login(ctx, "admin@example.com", "password123", true)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("email is normalized", func(t *testing.T) {
		user, token, err := env.auth.Login(ctx, "  STAFF@Example.COM  ", "password123", false)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "staff@example.com", user.Email)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@EXAMPLE.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
