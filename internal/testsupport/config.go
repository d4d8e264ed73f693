package testsupport

import (
	"path/filepath"
	"testing"

	"pagegen/internal/config"
)

// NewConfig produces a config rooted in a fresh temp directory per test. All
// path fields are absolute, so normalization is not needed.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = base
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.PagesDir = filepath.Join(base, "pages")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.Root
}
