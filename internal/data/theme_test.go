//go:build unit

package data

import (
	"context"
	"errors"
	"testing"

	"go-blog-app/internal/storage"
)

func TestThemeState(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to light", func(t *testing.T) {
		s := NewThemeState(storage.NewMemoryStore())
		theme, err := s.Current(ctx)
		if err != nil {
			t.Fatalf("Current failed: %v", err)
		}
		if theme != ThemeLight {
			t.Errorf("expected light, got %q", theme)
		}
	})

	t.Run("set rejects values outside the enum", func(t *testing.T) {
		s := NewThemeState(storage.NewMemoryStore())
		err := s.Set(ctx, Theme("sepia"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("toggle round-trips", func(t *testing.T) {
		s := NewThemeState(storage.NewMemoryStore())
		theme, err := s.Toggle(ctx)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if theme != ThemeDark {
			t.Errorf("expected dark after first toggle, got %q", theme)
		}
		theme, _ = s.Toggle(ctx)
		if theme != ThemeLight {
			t.Errorf("expected light after second toggle, got %q", theme)
		}
		if current, _ := s.Current(ctx); current != ThemeLight {
			t.Errorf("toggle must persist, Current = %q", current)
		}
	})
}
