// Package session remembers the authenticated user and bearer token between
// process runs, using two single-value slots in the key/value store.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

// Storage keys for the two session slots, matching the original persisted
// layout.
const (
	CurrentUserKey = "todoapp_current_user"
	AuthTokenKey   = "todoapp_auth_token"
)

// Session reads and writes the current-user and token slots.
type Session struct {
	store kvstore.Storage
}

// New creates a session handle over the given store.
func New(store kvstore.Storage) *Session {
	return &Session{store: store}
}

// CurrentUser returns the remembered user, or ok=false when no one is logged
// in.
func (s *Session) CurrentUser() (*models.User, bool) {
	usr, ok := kvstore.ReadSingle[models.User](s.store, CurrentUserKey)
	if !ok {
		return nil, false
	}

	return &usr, true
}

// SetCurrentUser remembers usr as the active account. A nil usr clears the
// slot.
func (s *Session) SetCurrentUser(usr *models.User) {
	if usr == nil {
		kvstore.Remove(s.store, CurrentUserKey)
		return
	}

	kvstore.WriteSingle(s.store, CurrentUserKey, *usr)
}

// Token returns the remembered bearer token, or ok=false.
func (s *Session) Token() (string, bool) {
	token, ok := kvstore.ReadSingle[string](s.store, AuthTokenKey)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

// SetToken remembers the bearer token. An empty token clears the slot.
func (s *Session) SetToken(token string) {
	if token == "" {
		kvstore.Remove(s.store, AuthTokenKey)
		return
	}

	kvstore.WriteSingle(s.store, AuthTokenKey, token)
}

// Clear forgets both the current user and the token.
func (s *Session) Clear() {
	kvstore.Remove(s.store, CurrentUserKey)
	kvstore.Remove(s.store, AuthTokenKey)
}

// TokenExpiry peeks at the remembered token's exp claim without verifying the
// signature; verification is the remote side's job and this only lets the UI
// prompt for a fresh login. ok=false when there is no token, it is not a JWT,
// or it carries no expiry.
func (s *Session) TokenExpiry() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
