package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-blog-app/internal/storage"
)

// sessionKey is the storage key holding the active session. It lives in the
// persistent store on purpose: the signed-in user survives restarts, unlike
// the tab-scoped admin flag.
const sessionKey = "currentUser"

// SessionState tracks the signed-in user. At most one session exists; signing
// in overwrites any prior session, and sessions never expire.
type SessionState struct {
	store storage.Store
	now   func() time.Time
}

// NewSessionState creates a SessionState backed by the given storage.
func NewSessionState(s storage.Store) *SessionState {
	return &SessionState{store: s, now: time.Now}
}

// SignIn records the user as the active session, stamping the login time.
func (s *SessionState) SignIn(ctx context.Context, user *User) (*Session, error) {
	sess := Session{
		Email:     user.Email,
		Name:      user.Name,
		LoginTime: isoTime(s.now()),
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey, string(raw)); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &sess, nil
}

// SignOut clears the active session. Signing out with no session is a no-op.
func (s *SessionState) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current returns the active session, or nil when nobody is signed in.
func (s *SessionState) Current(ctx context.Context) (*Session, error) {
	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}
