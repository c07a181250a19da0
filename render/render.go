// Package render implements the display conventions consumed by
// browsing frontends: tagged HTML-link strings for stored files and
// preview truncation for large text cells. The core indexing pipeline
// has no dependency on this package.
package render

import (
	"fmt"
	"strings"
)

// HTMLSafeTag marks a string value as containing raw HTML that a
// frontend may render unescaped.
const HTMLSafeTag = "||HTMLSAFE||"

// previewLimit is the maximum number of runes shown for content cells.
const previewLimit = 150

// previewColumns are the cell names whose values get truncated to a
// short preview instead of rendered in full.
var previewColumns = map[string]bool{
	"plaintext_content": true,
	"content":           true,
}

// LinkHTMLFile returns a tagged HTML link to a stored file's media
// endpoint. An empty name falls back to the key.
func LinkHTMLFile(key, name string) string {
	if name == "" {
		name = key
	}
	return fmt.Sprintf("%s<a href='/-/media/html/%s'>%s</a>", HTMLSafeTag, key, name)
}

// Unwrap strips the HTML-safe tag from a value. The second return value
// reports whether the value was tagged; untagged values are returned
// unchanged and should be escaped by the caller as usual.
func Unwrap(value string) (string, bool) {
	if strings.HasPrefix(value, HTMLSafeTag) {
		return value[len(HTMLSafeTag):], true
	}
	return value, false
}

// RenderCell post-processes a cell value for display: content columns
// are truncated to a short preview, tagged values are unwrapped, and
// everything else passes through unchanged.
func RenderCell(column, value string) string {
	if previewColumns[column] {
		return preview(value)
	}
	unwrapped, _ := Unwrap(value)
	return unwrapped
}

func preview(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= previewLimit {
		return value
	}
	return string(runes[:previewLimit]) + "..."
}
