//go:build unit

package format

import (
	"strings"
	"testing"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"web-development", "Web Development"},
		{"ai", "Ai"},
		{"programming", "Programming"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Category(tc.slug); got != tc.want {
			t.Errorf("Category(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}

func TestDates(t *testing.T) {
	const iso = "2024-01-15T00:00:00.000Z"

	t.Run("long month for detail views", func(t *testing.T) {
		if got := DateLong(iso); got != "January 15, 2024" {
			t.Errorf("DateLong = %q", got)
		}
	})

	t.Run("short month for admin tables", func(t *testing.T) {
		if got := DateShort(iso); got != "Jan 15, 2024" {
			t.Errorf("DateShort = %q", got)
		}
	})

	t.Run("unparseable input passes through", func(t *testing.T) {
		if got := DateLong("not-a-date"); got != "not-a-date" {
			t.Errorf("DateLong = %q", got)
		}
		if got := DateShort("not-a-date"); got != "not-a-date" {
			t.Errorf("DateShort = %q", got)
		}
	})
}

func TestContent(t *testing.T) {
	t.Run("single block becomes one paragraph", func(t *testing.T) {
		if got := Content("hello world"); got != "<p>hello world</p>" {
			t.Errorf("Content = %q", got)
		}
	})

	t.Run("blank lines delimit paragraphs", func(t *testing.T) {
		got := Content("first\n\nsecond\n\n\n\nthird")
		if strings.Count(got, "<p>") != 3 {
			t.Errorf("expected 3 paragraphs, got %q", got)
		}
	})

	t.Run("single newlines become line breaks", func(t *testing.T) {
		got := Content("line one\nline two")
		if strings.Count(got, "<p>") != 1 || !strings.Contains(got, "<br") {
			t.Errorf("expected one paragraph with a line break, got %q", got)
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		got := Content("\n\n  padded  \n\n")
		if got != "<p>padded</p>" {
			t.Errorf("Content = %q", got)
		}
	})

	t.Run("dangerous markup is stripped", func(t *testing.T) {
		got := Content(`hello <script>alert(1)</script> <a href="javascript:x">x</a>`)
		if strings.Contains(got, "<script") || strings.Contains(got, "javascript:") {
			t.Errorf("unsafe markup survived: %q", got)
		}
		if !strings.Contains(got, "hello") {
			t.Errorf("safe text lost: %q", got)
		}
	})
}

func TestDataURI(t *testing.T) {
	if got := DataURI("image/jpeg", []byte("abc")); got != "data:image/jpeg;base64,YWJj" {
		t.Errorf("DataURI = %q", got)
	}
}

func TestGalleryDataURIs(t *testing.T) {
	// Gallery encoding must preserve upload order.
	uris := GalleryDataURIs("image/jpeg", [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	want := []string{
		"data:image/jpeg;base64,YQ==",
		"data:image/jpeg;base64,Yg==",
		"data:image/jpeg;base64,Yw==",
	}
	if len(uris) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(uris))
	}
	for i := range want {
		if uris[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, uris[i], want[i])
		}
	}
}
