package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore/memkv"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

func TestCurrentUserRoundTrip(t *testing.T) {
	sess := New(memkv.New())

	_, ok := sess.CurrentUser()
	assert.False(t, ok)

	alice := models.User{
		ID:       "u1",
		Email:    "alice@example.com",
		Username: "alice",
	}
	sess.SetCurrentUser(&alice)

	got, ok := sess.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, alice, *got)

	sess.SetCurrentUser(nil)
	_, ok = sess.CurrentUser()
	assert.False(t, ok, "a nil user should clear the slot")
}

func TestTokenRoundTrip(t *testing.T) {
	sess := New(memkv.New())

	_, ok := sess.Token()
	assert.False(t, ok)

	sess.SetToken("bearer-token")
	token, ok := sess.Token()
	require.True(t, ok)
	assert.Equal(t, "bearer-token", token)

	sess.SetToken("")
	_, ok = sess.Token()
	assert.False(t, ok, "an empty token should clear the slot")
}

func TestClear(t *testing.T) {
	sess := New(memkv.New())

	sess.SetCurrentUser(&models.User{ID: "u1"})
	sess.SetToken("bearer-token")

	sess.Clear()

	_, ok := sess.CurrentUser()
	assert.False(t, ok)
	_, ok = sess.Token()
	assert.False(t, ok)
}

func TestTokenExpiry(t *testing.T) {
	sess := New(memkv.New())

	_, ok := sess.TokenExpiry()
	assert.False(t, ok, "no token means no expiry")

	sess.SetToken("not-a-jwt")
	_, ok = sess.TokenExpiry()
	assert.False(t, ok)

	expiry := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("irrelevant-key"))
	require.NoError(t, err)

	sess.SetToken(signed)
	got, ok := sess.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(expiry))
}
