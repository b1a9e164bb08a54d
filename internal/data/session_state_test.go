//go:build unit

package data

import (
	"context"
	"testing"

	"go-blog-app/internal/storage"
)

func TestSessionState(t *testing.T) {
	ctx := context.Background()
	ada := &User{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	bob := &User{Name: "Bob", Email: "bob@example.com", Password: "secret1"}

	t.Run("no session by default", func(t *testing.T) {
		s := NewSessionState(storage.NewMemoryStore())
		sess, err := s.Current(ctx)
		if err != nil {
			t.Fatalf("Current failed: %v", err)
		}
		if sess != nil {
			t.Errorf("expected no session, got %+v", sess)
		}
	})

	t.Run("sign in stores email name and login time", func(t *testing.T) {
		s := NewSessionState(storage.NewMemoryStore())
		s.now = fixedClock(testEpoch)
		sess, err := s.SignIn(ctx, ada)
		if err != nil {
			t.Fatalf("SignIn failed: %v", err)
		}
		if sess.Email != ada.Email || sess.Name != ada.Name {
			t.Errorf("unexpected session: %+v", sess)
		}
		if sess.LoginTime != "2024-03-01T12:00:00.000Z" {
			t.Errorf("unexpected login time %q", sess.LoginTime)
		}
		current, _ := s.Current(ctx)
		if current == nil || current.Email != ada.Email {
			t.Errorf("Current should return the stored session, got %+v", current)
		}
	})

	t.Run("sign in overwrites the prior session", func(t *testing.T) {
		s := NewSessionState(storage.NewMemoryStore())
		s.SignIn(ctx, ada)
		s.SignIn(ctx, bob)
		current, _ := s.Current(ctx)
		if current == nil || current.Email != bob.Email {
			t.Errorf("expected bob's session, got %+v", current)
		}
	})

	t.Run("sign out clears the session", func(t *testing.T) {
		s := NewSessionState(storage.NewMemoryStore())
		s.SignIn(ctx, ada)
		if err := s.SignOut(ctx); err != nil {
			t.Fatalf("SignOut failed: %v", err)
		}
		if current, _ := s.Current(ctx); current != nil {
			t.Errorf("expected no session after sign-out, got %+v", current)
		}
		// Signing out twice is harmless.
		if err := s.SignOut(ctx); err != nil {
			t.Errorf("repeat SignOut failed: %v", err)
		}
	})
}
