// Package descriptor parses the INI files that drive page generation.
//
// A descriptor names the body text for one page in its [header] section and
// optionally carries a [properties] section whose entries become metadata
// lines, in declaration order, on the generated page.
package descriptor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	headerSection     = "header"
	contentKey        = "content"
	propertiesSection = "properties"
)

var (
	// ErrNoHeader marks a descriptor without a [header] section.
	ErrNoHeader = errors.New("descriptor has no [header] section")
	// ErrNoContent marks a [header] section without a usable content entry.
	ErrNoContent = errors.New("descriptor header names no content file")
)

// Property is one ordered [properties] entry.
type Property struct {
	Key   string
	Value string
}

// Descriptor is the parsed form of one descriptor file.
type Descriptor struct {
	// Path is the absolute location of the descriptor file.
	Path string
	// Dir is the directory holding the descriptor; content references and
	// the derived page name are both anchored here.
	Dir string
	// ContentPath is the absolute path of the referenced body file.
	ContentPath string
	// Properties holds the [properties] entries in declaration order.
	Properties []Property
}

// ParseFile reads one descriptor file. Missing [header] or content entries
// are reported via ErrNoHeader/ErrNoContent so callers can treat them as
// per-item skips rather than failures.
func ParseFile(path string) (*Descriptor, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse descriptor %s: %w", path, err)
	}

	header, err := file.GetSection(headerSection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}
	if !header.HasKey(contentKey) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoContent)
	}
	contentName := Unquote(strings.TrimSpace(header.Key(contentKey).Value()))
	if contentName == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoContent)
	}

	dir := filepath.Dir(path)
	desc := &Descriptor{
		Path:        path,
		Dir:         dir,
		ContentPath: filepath.Join(dir, contentName),
	}

	if props, err := file.GetSection(propertiesSection); err == nil {
		keys := props.Keys()
		desc.Properties = make([]Property, 0, len(keys))
		for _, key := range keys {
			desc.Properties = append(desc.Properties, Property{Key: key.Name(), Value: key.Value()})
		}
	}

	return desc, nil
}

// Unquote strips one symmetric layer of double quotes. Values quoted in the
// descriptor are usually unwrapped by the INI parser already; this covers
// descriptors that quote twice or use quoting the parser passes through.
func Unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
