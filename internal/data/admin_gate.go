package data

import (
	"context"
	"fmt"

	"go-blog-app/internal/storage"
)

// adminKey is the logged-in flag for the admin panel. It belongs on the
// ephemeral store: the flag is tab-scoped in the browser and must not
// outlive the process here.
const adminKey = "adminLoggedIn"

// AdminGate guards the admin panel with a single fixed password. This is a
// prototype gate kept for behavioral parity, not an authentication design:
// the password is a configured literal compared in cleartext.
type AdminGate struct {
	store    storage.Store
	password string
}

// NewAdminGate creates an AdminGate over the ephemeral store.
func NewAdminGate(ephemeral storage.Store, password string) *AdminGate {
	return &AdminGate{store: ephemeral, password: password}
}

// SignIn checks the password and sets the logged-in flag.
func (g *AdminGate) SignIn(ctx context.Context, password string) error {
	if password == "" {
		return &ValidationError{Msg: "a password is required"}
	}
	if password != g.password {
		return &InvalidCredentialsError{}
	}
	if err := g.store.Set(ctx, adminKey, "true"); err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}
	return nil
}

// SignedIn reports whether the admin flag is set.
func (g *AdminGate) SignedIn(ctx context.Context) (bool, error) {
	raw, ok, err := g.store.Get(ctx, adminKey)
	if err != nil {
		return false, fmt.Errorf("failed to read admin flag: %w", err)
	}
	return ok && raw == "true", nil
}

// SignOut clears the admin flag.
func (g *AdminGate) SignOut(ctx context.Context) error {
	if err := g.store.Remove(ctx, adminKey); err != nil {
		return fmt.Errorf("failed to clear admin flag: %w", err)
	}
	return nil
}
