// Package format holds the presentation helpers shared by the listing and
// admin surfaces: category labels, date rendering, content markup, and
// data-URI encoding for the image pipeline.
package format

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizer strips dangerous markup from user-supplied content while keeping
// the basic formatting the post body uses.
var sanitizer = bluemonday.UGCPolicy()

// Category turns a category slug into its display label:
// "web-development" becomes "Web Development".
func Category(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// DateLong renders an ISO-8601 timestamp with the full month name, as the
// detail views do: "January 15, 2024". Unparseable input is returned as-is.
func DateLong(iso string) string {
	t := parseISO(iso)
	if t.IsZero() {
		return iso
	}
	return t.Format("January 2, 2006")
}

// DateShort renders an ISO-8601 timestamp with the abbreviated month name, as
// the tabular admin views do: "Jan 15, 2024". Unparseable input is returned
// as-is.
func DateShort(iso string) string {
	t := parseISO(iso)
	if t.IsZero() {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// Content renders blank-line-delimited text as paragraph markup: each
// blank-line-separated block becomes a <p> element, single newlines inside a
// block become <br>. The result is sanitized before it is stored.
func Content(text string) string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		block = strings.ReplaceAll(block, "\n", "<br>")
		paragraphs = append(paragraphs, "<p>"+block+"</p>")
	}
	return sanitizer.Sanitize(strings.Join(paragraphs, "\n"))
}

// Sanitize applies the content policy to already-formed markup, such as
// imported post bodies.
func Sanitize(markup string) string {
	return sanitizer.Sanitize(markup)
}

func parseISO(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DataURI encodes raw image bytes as a base64 data URI, the storage format
// the image pipeline produces for featured images and gallery entries.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// GalleryDataURIs encodes a batch of images one at a time, in input order, so
// the stored gallery order matches the upload order.
func GalleryDataURIs(mime string, images [][]byte) []string {
	uris := make([]string, 0, len(images))
	for _, img := range images {
		uris = append(uris, DataURI(mime, img))
	}
	return uris
}
