// Package marker implements the marker-delimited block protocol.
//
// A marked block is a literal marker line followed by content the injector
// owns. Once established the block is always the tail of the file: the region
// from the marker to end-of-file is replaced wholesale on every run and is
// never appended to.
package marker

import (
	"strings"
	"unicode"
)

// Upsert inserts or replaces the block identified by marker.
//
// When marker occurs in content, everything from its first occurrence to the
// end is replaced and replaced is true. Otherwise trailing whitespace is
// trimmed from content and the block is appended after a blank line.
//
// Both branches produce the same tail, so a second call with the same block
// returns content unchanged. An empty marker identifies no block and content
// is returned as is.
func Upsert(content, marker, block string) (result string, replaced bool) {
	if marker == "" {
		return content, false
	}

	tail := marker + "\n" + block + "\n"

	if idx := strings.Index(content, marker); idx >= 0 {
		return content[:idx] + tail, true
	}

	return strings.TrimRightFunc(content, unicode.IsSpace) + "\n\n" + tail, false
}

// Count returns the number of non-overlapping occurrences of marker.
func Count(content, marker string) int {
	if marker == "" {
		return 0
	}
	return strings.Count(content, marker)
}
