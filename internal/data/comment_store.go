package data

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-blog-app/internal/storage"
)

// commentsKey is the storage key holding all comment threads, keyed by the
// decimal post id.
const commentsKey = "postComments"

// CommentStore manages per-post comment threads. Threads are append-only:
// there is no edit or delete once a comment is posted.
type CommentStore struct {
	store storage.Store
	now   func() time.Time
}

// NewCommentStore creates a CommentStore backed by the given storage.
func NewCommentStore(s storage.Store) *CommentStore {
	return &CommentStore{store: s, now: time.Now}
}

func (s *CommentStore) load(ctx context.Context) (map[string][]Comment, error) {
	raw, ok, err := s.store.Get(ctx, commentsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	if !ok {
		return map[string][]Comment{}, nil
	}
	var threads map[string][]Comment
	if err := json.Unmarshal([]byte(raw), &threads); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	if threads == nil {
		threads = map[string][]Comment{}
	}
	return threads, nil
}

func (s *CommentStore) save(ctx context.Context, threads map[string][]Comment) error {
	raw, err := json.Marshal(threads)
	if err != nil {
		return fmt.Errorf("failed to encode comments: %w", err)
	}
	if err := s.store.Set(ctx, commentsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save comments: %w", err)
	}
	return nil
}

// List returns the comments on a post in stored (chronological) order. A
// post with no thread yields an empty list.
func (s *CommentStore) List(ctx context.Context, postID int64) ([]Comment, error) {
	threads, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return threads[strconv.FormatInt(postID, 10)], nil
}

// Append adds a comment to a post's thread. Commenting requires an active
// session; the author name and email are copied from it at submission time.
// Empty text is rejected.
func (s *CommentStore) Append(ctx context.Context, postID int64, sess *Session, text string) (*Comment, error) {
	if sess == nil {
		return nil, &ValidationError{Msg: "you must be signed in to comment"}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Msg: "a comment cannot be empty"}
	}

	threads, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	comment := Comment{
		ID:     nowID(now),
		Author: sess.Name,
		Email:  sess.Email,
		Text:   text,
		Date:   isoTime(now),
	}
	key := strconv.FormatInt(postID, 10)
	threads[key] = append(threads[key], comment)
	if err := s.save(ctx, threads); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Count returns the total number of comments across all threads.
func (s *CommentStore) Count(ctx context.Context) (int, error) {
	threads, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, thread := range threads {
		total += len(thread)
	}
	return total, nil
}
