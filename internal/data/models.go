// Package data implements the blog's shared data layer: posts, users,
// sessions, comments, contact messages, the theme preference, and the admin
// gate. All state lives as JSON blobs under well-known storage keys; every
// operation reads the whole collection, mutates it in memory, and writes it
// back whole.
package data

import (
	"encoding/json"
	"fmt"
	"time"
)

// PostType distinguishes regular articles from video posts.
type PostType string

const (
	PostTypeArticle PostType = "article"
	PostTypeVideo   PostType = "video"
)

// Valid reports whether t is a recognized post type. The empty string is
// accepted for compatibility with records written before the type field
// existed; those are treated as articles.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeArticle, PostTypeVideo, "":
		return true
	}
	return false
}

// UnmarshalJSON rejects unrecognized post types at the decode boundary.
func (t *PostType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !PostType(s).Valid() {
		return fmt.Errorf("unrecognized post type %q", s)
	}
	*t = PostType(s)
	return nil
}

// PostStatus is the publication state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// Valid reports whether s is a recognized post status.
func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// UnmarshalJSON rejects unrecognized statuses at the decode boundary.
func (s *PostStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !PostStatus(raw).Valid() {
		return fmt.Errorf("unrecognized post status %q", raw)
	}
	*s = PostStatus(raw)
	return nil
}

// Post is a single blog post. ID is assigned at creation from the millisecond
// clock and never changes; Date is the creation time and is preserved across
// edits. Content holds pre-formatted paragraph markup, FeaturedImage and
// Gallery hold data URIs produced by the image pipeline, and VideoURL is set
// only on video posts.
type Post struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Type          PostType   `json:"type,omitempty"`
	Status        PostStatus `json:"status"`
	Date          string     `json:"date"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Gallery       []string   `json:"gallery"`
	VideoURL      string     `json:"videoUrl,omitempty"`
}

// IsVideo reports whether the post is a video post.
func (p *Post) IsVideo() bool {
	return p.Type == PostTypeVideo
}

// PostDraft carries the editable fields of a post, as submitted by the post
// form. Content is raw blank-line-delimited text; it is rendered to paragraph
// markup when the post is stored.
type PostDraft struct {
	Title         string
	Category      string
	Excerpt       string
	Content       string
	Type          PostType
	VideoURL      string
	FeaturedImage string
	Gallery       []string
	Draft         bool
}

// QuickEdit carries the fields the quick-edit form can change. Content,
// images, video URL, and the creation date are deliberately untouched.
type QuickEdit struct {
	Title    string
	Category string
	Excerpt  string
	Draft    bool
}

// User is a registered account. The password is stored in cleartext for
// parity with the front-end this replaces; the mechanism is a prototype
// convenience and unsuitable for any real deployment.
type User struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RegistrationDate string `json:"registrationDate"`
}

// Session is the signed-in user, at most one per store. It has no expiry and
// survives restarts until an explicit sign-out.
type Session struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	LoginTime string `json:"loginTime"`
}

// Comment is one entry in a post's comment thread. Author and Email are
// copied from the session at submission time; renaming a user later does not
// relabel past comments.
type Comment struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// ContactMessage is one submission of the contact form.
type ContactMessage struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
	Timestamp  string `json:"timestamp"`
}

// isoLayout is the timestamp format of the storage blobs: UTC with
// millisecond precision, as written by Date.toISOString().
const isoLayout = "2006-01-02T15:04:05.000Z"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// nowID derives an identifier from the millisecond clock. Two records created
// within the same millisecond collide; the stores do not deduplicate. Known
// limitation, kept because changing it would change observable id assignment.
func nowID(t time.Time) int64 {
	return t.UnixMilli()
}

// parseDate parses a stored ISO-8601 timestamp. Unparseable values sort as
// the zero time rather than failing the whole listing.
func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
