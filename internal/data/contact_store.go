package data

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go-blog-app/internal/storage"
)

// contactKey is the storage key holding submitted contact messages.
const contactKey = "contactMessages"

// emailPattern is the contact form's email check: no whitespace or extra @
// on either side, and at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactStore collects contact-form submissions.
type ContactStore struct {
	store storage.Store
	now   func() time.Time
}

// NewContactStore creates a ContactStore backed by the given storage.
func NewContactStore(s storage.Store) *ContactStore {
	return &ContactStore{store: s, now: time.Now}
}

func (s *ContactStore) load(ctx context.Context) ([]ContactMessage, error) {
	raw, ok, err := s.store.Get(ctx, contactKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact messages: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var messages []ContactMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

// Submit validates and stores a contact message, assigning its id and
// timestamp. Messages are appended in submission order.
func (s *ContactStore) Submit(ctx context.Context, msg ContactMessage) (*ContactMessage, error) {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.FirstName == "" || msg.LastName == "" || msg.Email == "" ||
		msg.Subject == "" || msg.Message == "" {
		return nil, &ValidationError{Msg: "all contact fields are required"}
	}
	if !emailPattern.MatchString(msg.Email) {
		return nil, &ValidationError{Msg: fmt.Sprintf("%q is not a valid email address", msg.Email)}
	}

	messages, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	msg.ID = nowID(now)
	msg.Timestamp = isoTime(now)
	messages = append(messages, msg)

	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact messages: %w", err)
	}
	if err := s.store.Set(ctx, contactKey, string(raw)); err != nil {
		return nil, fmt.Errorf("failed to save contact messages: %w", err)
	}
	return &msg, nil
}

// List returns all contact messages in submission order.
func (s *ContactStore) List(ctx context.Context) ([]ContactMessage, error) {
	return s.load(ctx)
}
