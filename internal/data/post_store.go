package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-blog-app/internal/format"
	"go-blog-app/internal/storage"
)

// postsKey is the storage key holding the whole post collection.
const postsKey = "blogPosts"

// PostStore provides CRUD and query operations over the post collection.
type PostStore struct {
	store storage.Store
	now   func() time.Time
}

// NewPostStore creates a PostStore backed by the given storage.
func NewPostStore(s storage.Store) *PostStore {
	return &PostStore{store: s, now: time.Now}
}

func (s *PostStore) load(ctx context.Context) ([]Post, error) {
	raw, ok, err := s.store.Get(ctx, postsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) save(ctx context.Context, posts []Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := s.store.Set(ctx, postsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}
	return nil
}

// List returns all posts in storage order. New posts are inserted at the
// front, so storage order is roughly newest-first; views that need a strict
// ordering apply SortByDateDesc before rendering.
func (s *PostStore) List(ctx context.Context) ([]Post, error) {
	return s.load(ctx)
}

// Get returns the post with the given id.
func (s *PostStore) Get(ctx context.Context, id int64) (*Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(id, 10)}
}

// validateDraft checks the fields every create and full edit requires.
func validateDraft(d *PostDraft) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Excerpt = strings.TrimSpace(d.Excerpt)
	d.Content = strings.TrimSpace(d.Content)
	d.VideoURL = strings.TrimSpace(d.VideoURL)
	if d.Title == "" || d.Category == "" || d.Excerpt == "" || d.Content == "" {
		return &ValidationError{Msg: "title, category, excerpt and content are required"}
	}
	if !d.Type.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("unrecognized post type %q", d.Type)}
	}
	if d.Type == "" {
		d.Type = PostTypeArticle
	}
	if d.Type == PostTypeVideo && d.VideoURL == "" {
		return &ValidationError{Msg: "a video URL is required for video posts"}
	}
	return nil
}

// buildPost assembles the stored form of a draft: trimmed fields, content
// rendered to paragraph markup, and the video URL kept only on video posts.
func buildPost(id int64, date string, d PostDraft) Post {
	status := StatusPublished
	if d.Draft {
		status = StatusDraft
	}
	gallery := d.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	videoURL := ""
	if d.Type == PostTypeVideo {
		videoURL = d.VideoURL
	}
	return Post{
		ID:            id,
		Title:         d.Title,
		Excerpt:       d.Excerpt,
		Content:       format.Content(d.Content),
		Category:      d.Category,
		Type:          d.Type,
		Status:        status,
		Date:          date,
		FeaturedImage: d.FeaturedImage,
		Gallery:       gallery,
		VideoURL:      videoURL,
	}
}

// Create validates the draft, assigns a millisecond-clock id and creation
// date, inserts the post at the front of the collection, and persists it.
func (s *PostStore) Create(ctx context.Context, draft PostDraft) (*Post, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	post := buildPost(nowID(now), isoTime(now), draft)
	posts = append([]Post{post}, posts...)
	if err := s.save(ctx, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the editable fields of an existing post. The draft is
// validated exactly like a create; id and the original creation date are
// preserved.
func (s *PostStore) Update(ctx context.Context, id int64, draft PostDraft) (*Post, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		post := buildPost(id, posts[i].Date, draft)
		posts[i] = post
		if err := s.save(ctx, posts); err != nil {
			return nil, err
		}
		return &post, nil
	}
	return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(id, 10)}
}

// QuickUpdate changes only the title, category, excerpt and publication
// status of a post. Content, images, the video URL and the creation date are
// left untouched.
func (s *PostStore) QuickUpdate(ctx context.Context, id int64, edit QuickEdit) (*Post, error) {
	edit.Title = strings.TrimSpace(edit.Title)
	edit.Category = strings.TrimSpace(edit.Category)
	edit.Excerpt = strings.TrimSpace(edit.Excerpt)
	if edit.Title == "" || edit.Category == "" || edit.Excerpt == "" {
		return nil, &ValidationError{Msg: "title, category and excerpt are required"}
	}
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		posts[i].Title = edit.Title
		posts[i].Category = edit.Category
		posts[i].Excerpt = edit.Excerpt
		posts[i].Status = StatusPublished
		if edit.Draft {
			posts[i].Status = StatusDraft
		}
		if err := s.save(ctx, posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(id, 10)}
}

// Delete removes the post with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *PostStore) Delete(ctx context.Context, id int64) error {
	posts, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.save(ctx, kept)
}

// PostFilter selects posts for Query. Zero-valued fields match everything;
// the three predicates are conjunctive. Search matches case-insensitively
// against title and excerpt, and additionally against content when
// MatchContent is set (the public-facing search does, the admin table does
// not).
type PostFilter struct {
	Search       string
	Category     string
	Status       PostStatus
	MatchContent bool
}

func (f *PostFilter) matches(p *Post) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	return f.MatchContent && strings.Contains(strings.ToLower(p.Content), q)
}

// Query returns the posts matching the filter, in storage order.
func (s *PostStore) Query(ctx context.Context, filter PostFilter) ([]Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Post
	for i := range posts {
		if filter.matches(&posts[i]) {
			matched = append(matched, posts[i])
		}
	}
	return matched, nil
}

// PublishedOnly filters to published posts. The public listing applies this
// before any other filter; drafts are never visible outside the admin view.
func PublishedOnly(posts []Post) []Post {
	var published []Post
	for _, p := range posts {
		if p.Status == StatusPublished {
			published = append(published, p)
		}
	}
	return published
}

// SortByDateDesc sorts posts newest-first by their creation date, in place.
// The sort is stable, so posts with equal dates keep their relative order.
func SortByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].Date).After(parseDate(posts[j].Date))
	})
}
