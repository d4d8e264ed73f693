package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGenerator()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Root) == "" {
		c.Paths.Root = defaultRoot
	}
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if c.Paths.AssetsDir, err = c.resolveAgainstRoot(c.Paths.AssetsDir, defaultAssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	if c.Paths.PagesDir, err = c.resolveAgainstRoot(c.Paths.PagesDir, defaultPagesDir); err != nil {
		return fmt.Errorf("paths.pages_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// resolveAgainstRoot expands a directory setting, anchoring relative values to
// the project root rather than the process working directory.
func (c *Config) resolveAgainstRoot(value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if strings.HasPrefix(value, "~") {
		return expandPath(value)
	}
	if !filepath.IsAbs(value) {
		value = filepath.Join(c.Paths.Root, value)
	}
	return expandPath(value)
}

func (c *Config) normalizeGenerator() {
	c.Generator.DescriptorName = strings.TrimSpace(c.Generator.DescriptorName)
	if c.Generator.DescriptorName == "" {
		c.Generator.DescriptorName = defaultDescriptorName
	}
	c.Generator.PageExtension = strings.TrimSpace(c.Generator.PageExtension)
	if c.Generator.PageExtension == "" {
		c.Generator.PageExtension = defaultPageExtension
	}
	if !strings.HasPrefix(c.Generator.PageExtension, ".") {
		c.Generator.PageExtension = "." + c.Generator.PageExtension
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("PAGEGEN_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
