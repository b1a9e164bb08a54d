package data

import (
	"context"
	"fmt"

	"go-blog-app/internal/storage"
)

// themeKey is the storage key holding the color-scheme preference.
const themeKey = "theme"

// Theme is the site color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a recognized theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeState persists the color-scheme preference shared by every page.
type ThemeState struct {
	store storage.Store
}

// NewThemeState creates a ThemeState backed by the given storage.
func NewThemeState(s storage.Store) *ThemeState {
	return &ThemeState{store: s}
}

// Current returns the stored theme, defaulting to light when none is set.
func (s *ThemeState) Current(ctx context.Context) (Theme, error) {
	raw, ok, err := s.store.Get(ctx, themeKey)
	if err != nil {
		return "", fmt.Errorf("failed to load theme: %w", err)
	}
	if !ok {
		return ThemeLight, nil
	}
	theme := Theme(raw)
	if !theme.Valid() {
		return ThemeLight, nil
	}
	return theme, nil
}

// Set stores the theme, rejecting values outside the closed enum.
func (s *ThemeState) Set(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("unrecognized theme %q", theme)}
	}
	if err := s.store.Set(ctx, themeKey, string(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeState) Toggle(ctx context.Context) (Theme, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeLight
	if current == ThemeLight {
		next = ThemeDark
	}
	if err := s.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
