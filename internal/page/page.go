// Package page defines the generated page format: the ownership marker, the
// derived-name function, and document assembly.
//
// The marker is both an output contract (every built page starts with it)
// and an input contract (the cleaner deletes only files that carry it), so
// the exact tokens live here and nowhere else.
package page

import (
	"path/filepath"
	"strings"

	"pagegen/internal/descriptor"
)

const (
	// MarkerKey and MarkerValue form the ownership marker.
	MarkerKey   = "generated"
	MarkerValue = "true"
	// Separator joins keys and values on the marker and property lines.
	// The trailing space is part of the token.
	Separator = ":: "
	// DefaultBaseName is the page name for a descriptor at the assets root.
	DefaultBaseName = "index"
	// DirJoiner replaces path separators in derived page names.
	DirJoiner = "___"
)

// MarkerLine returns the exact first line of every generated page.
func MarkerLine() string {
	return MarkerKey + Separator + MarkerValue
}

// IsGenerated reports whether a first line marks a file as system-owned.
// The line is trimmed and split once on the separator token; ownership
// requires both trimmed parts to match the marker exactly. A line like
// "generated::true" has no separator token and is never owned.
func IsGenerated(firstLine string) bool {
	key, value, found := strings.Cut(strings.TrimSpace(firstLine), Separator)
	if !found {
		return false
	}
	return strings.TrimSpace(key) == MarkerKey && strings.TrimSpace(value) == MarkerValue
}

// DeriveBaseName maps a descriptor directory, given relative to the assets
// root, to its page base name. The mapping is a pure function of the
// relative path: the root maps to DefaultBaseName, anything deeper joins its
// path elements with DirJoiner.
func DeriveBaseName(rel string) string {
	rel = filepath.ToSlash(strings.TrimSpace(rel))
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return DefaultBaseName
	}
	return strings.ReplaceAll(rel, "/", DirJoiner)
}

// FileName derives the full page filename for a descriptor directory
// relative to the assets root.
func FileName(rel, extension string) string {
	return DeriveBaseName(rel) + extension
}

// Render assembles a page document: the marker line, one line per property
// in declaration order, a blank separator line, then the verbatim content.
func Render(props []descriptor.Property, content string) []byte {
	var b strings.Builder
	b.Grow(len(MarkerLine()) + len(props)*16 + len(content) + 2)
	b.WriteString(MarkerLine())
	for _, prop := range props {
		b.WriteByte('\n')
		b.WriteString(prop.Key)
		b.WriteString(Separator)
		b.WriteString(prop.Value)
	}
	b.WriteString("\n\n")
	b.WriteString(content)
	return []byte(b.String())
}
