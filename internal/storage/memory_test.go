//go:build unit

package storage

import (
	"context"
	"testing"
)

var _ Store = (*MemoryStore)(nil)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := NewMemoryStore()
		value, ok, err := s.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Errorf("expected missing key, got value %q", value)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		s := NewMemoryStore()
		if err := s.Set(ctx, "theme", "dark"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, ok, err := s.Get(ctx, "theme")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok || value != "dark" {
			t.Errorf("expected (dark, true), got (%q, %v)", value, ok)
		}
	})

	t.Run("set replaces previous value", func(t *testing.T) {
		s := NewMemoryStore()
		s.Set(ctx, "theme", "dark")
		s.Set(ctx, "theme", "light")
		value, _, _ := s.Get(ctx, "theme")
		if value != "light" {
			t.Errorf("expected light, got %q", value)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := NewMemoryStore()
		s.Set(ctx, "theme", "dark")
		if err := s.Remove(ctx, "theme"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if _, ok, _ := s.Get(ctx, "theme"); ok {
			t.Error("expected key to be gone after Remove")
		}
		// Removing an absent key is not an error.
		if err := s.Remove(ctx, "theme"); err != nil {
			t.Errorf("Remove of absent key failed: %v", err)
		}
	})
}
