package descriptor_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pagegen/internal/descriptor"
)

func writeDescriptor(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "index.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	return path
}

func TestParseFileResolvesContentAndKeepsPropertyOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, `[header]
content = "body.md"

[properties]
zebra = last letter
alpha = first letter
title = Hello World
`)

	desc, err := descriptor.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if desc.Path != path {
		t.Fatalf("unexpected descriptor path: %q", desc.Path)
	}
	if desc.Dir != dir {
		t.Fatalf("unexpected descriptor dir: %q", desc.Dir)
	}
	if want := filepath.Join(dir, "body.md"); desc.ContentPath != want {
		t.Fatalf("unexpected content path: got %q want %q", desc.ContentPath, want)
	}

	wantProps := []descriptor.Property{
		{Key: "zebra", Value: "last letter"},
		{Key: "alpha", Value: "first letter"},
		{Key: "title", Value: "Hello World"},
	}
	if len(desc.Properties) != len(wantProps) {
		t.Fatalf("unexpected property count: got %d want %d", len(desc.Properties), len(wantProps))
	}
	for i, want := range wantProps {
		if desc.Properties[i] != want {
			t.Fatalf("property %d: got %+v want %+v", i, desc.Properties[i], want)
		}
	}
}

func TestParseFileWithoutPropertiesSection(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "[header]\ncontent = body.md\n")

	desc, err := descriptor.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if len(desc.Properties) != 0 {
		t.Fatalf("expected no properties, got %+v", desc.Properties)
	}
}

func TestParseFileMissingHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "[properties]\ntitle = Orphan\n")

	_, err := descriptor.ParseFile(path)
	if !errors.Is(err, descriptor.ErrNoHeader) {
		t.Fatalf("expected ErrNoHeader, got %v", err)
	}
}

func TestParseFileMissingContentKey(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "[header]\ntitle = NotContent\n")

	_, err := descriptor.ParseFile(path)
	if !errors.Is(err, descriptor.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestParseFileEmptyContentValue(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "[header]\ncontent =\n")

	_, err := descriptor.ParseFile(path)
	if !errors.Is(err, descriptor.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestParseFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "[header\ncontent = body.md\n")

	_, err := descriptor.ParseFile(path)
	if err == nil {
		t.Fatal("expected parse error for malformed descriptor")
	}
	if errors.Is(err, descriptor.ErrNoHeader) || errors.Is(err, descriptor.ErrNoContent) {
		t.Fatalf("expected a parse error, got sentinel %v", err)
	}
}

func TestUnquote(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"body.md"`, "body.md"},
		{`""body.md""`, `"body.md"`},
		{"body.md", "body.md"},
		{`"`, `"`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := descriptor.Unquote(tc.in); got != tc.want {
			t.Fatalf("Unquote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
