package data

import "fmt"

// The stores surface four failure classes so callers can branch with
// errors.As. A failed operation never touches persisted state.

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// DuplicateError reports a unique-key violation on a user email. The match is
// exact and case-sensitive.
type DuplicateError struct {
	Email string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("an account with email %q already exists", e.Email)
}

// NotFoundError reports an operation referencing a nonexistent record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidCredentialsError reports an authentication failure against an
// existing account.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid password"
}
