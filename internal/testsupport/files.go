package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagegen/internal/config"
)

// WriteAsset writes a file under the assets tree, creating parent
// directories. rel uses forward slashes.
func WriteAsset(t testing.TB, cfg *config.Config, rel, body string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.AssetsDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteDescriptor writes a descriptor file in relDir naming contentName and
// carrying the given properties in order. Each property is a key/value pair.
func WriteDescriptor(t testing.TB, cfg *config.Config, relDir, contentName string, props ...[2]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("[header]\n")
	fmt.Fprintf(&b, "content = %q\n", contentName)
	if len(props) > 0 {
		b.WriteString("\n[properties]\n")
		for _, prop := range props {
			fmt.Fprintf(&b, "%s = %s\n", prop[0], prop[1])
		}
	}

	rel := cfg.Generator.DescriptorName
	if relDir != "" && relDir != "." {
		rel = relDir + "/" + rel
	}
	return WriteAsset(t, cfg, rel, b.String())
}

// WritePage drops a file directly into the pages directory, creating it if
// needed. Used to seed pre-existing pages for cleaner tests.
func WritePage(t testing.TB, cfg *config.Config, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.PagesDir, 0o755); err != nil {
		t.Fatalf("mkdir pages dir: %v", err)
	}
	path := filepath.Join(cfg.Paths.PagesDir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadPage returns the contents of a generated page.
func ReadPage(t testing.TB, cfg *config.Config, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(cfg.Paths.PagesDir, name))
	if err != nil {
		t.Fatalf("read page %s: %v", name, err)
	}
	return string(data)
}

// ListPages returns the sorted names of entries in the pages directory.
func ListPages(t testing.TB, cfg *config.Config) []string {
	t.Helper()

	entries, err := os.ReadDir(cfg.Paths.PagesDir)
	if err != nil {
		t.Fatalf("read pages dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
