package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-blog-app/internal/format"
	"go-blog-app/internal/storage"
)

// usersKey is the storage key holding the registered-user collection.
const usersKey = "registeredUsers"

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 6

// UserStore manages registered accounts. Credentials are stored and compared
// in cleartext for parity with the front-end this replaces; do not reuse this
// mechanism anywhere that matters.
type UserStore struct {
	store storage.Store
	now   func() time.Time
}

// NewUserStore creates a UserStore backed by the given storage.
func NewUserStore(s storage.Store) *UserStore {
	return &UserStore{store: s, now: time.Now}
}

func (s *UserStore) load(ctx context.Context) ([]User, error) {
	raw, ok, err := s.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *UserStore) save(ctx context.Context, users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.store.Set(ctx, usersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Register creates a new account. It fails with ValidationError when a field
// is empty, the password is too short, or the confirmation does not match,
// and with DuplicateError when the email is already registered. Email
// matching is exact and case-sensitive.
func (s *UserStore) Register(ctx context.Context, name, email, password, confirm string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, &ValidationError{Msg: "name, email and password are required"}
	}
	if len(password) < minPasswordLen {
		return nil, &ValidationError{Msg: fmt.Sprintf("password must be at least %d characters long", minPasswordLen)}
	}
	if password != confirm {
		return nil, &ValidationError{Msg: "passwords do not match"}
	}

	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, &DuplicateError{Email: email}
		}
	}

	user := User{
		Name:             name,
		Email:            email,
		Password:         password,
		RegistrationDate: isoTime(s.now()),
	}
	users = append(users, user)
	if err := s.save(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the account with the exact email, or nil when none
// exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Authenticate checks the credentials of an existing account. It fails with
// NotFoundError when no account matches the email and with
// InvalidCredentialsError when the password differs. The compare is a plain
// cleartext equality, kept for behavioral parity.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &ValidationError{Msg: "email and password are required"}
	}
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Kind: "user", ID: email}
	}
	if user.Password != password {
		return nil, &InvalidCredentialsError{}
	}
	return user, nil
}

// Count returns the number of registered accounts.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	users, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// ExportCSV renders the registered users as CSV, newest registration first:
// a `Name,Email,Registration Date` header and one quoted-field row per user,
// dates in the short admin format. Embedded quotes are not escaped; anything
// consuming this output needs to cope. Known limitation, kept so the export
// bytes stay stable.
func (s *UserStore) ExportCSV(ctx context.Context) (string, error) {
	users, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return parseDate(users[i].RegistrationDate).After(parseDate(users[j].RegistrationDate))
	})

	lines := make([]string, 0, len(users)+1)
	lines = append(lines, "Name,Email,Registration Date")
	for _, u := range users {
		lines = append(lines, `"`+u.Name+`","`+u.Email+`","`+format.DateShort(u.RegistrationDate)+`"`)
	}
	return strings.Join(lines, "\n"), nil
}

// ExportFilename is the dated default name for a CSV export, e.g.
// "registered_users_2024-02-20.csv".
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("registered_users_%s.csv", t.UTC().Format("2006-01-02"))
}
