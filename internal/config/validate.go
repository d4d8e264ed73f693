package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGenerator(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.AssetsDir) == "" {
		return errors.New("paths.assets_dir must be set")
	}
	if strings.TrimSpace(c.Paths.PagesDir) == "" {
		return errors.New("paths.pages_dir must be set")
	}
	if c.Paths.AssetsDir == c.Paths.PagesDir {
		return fmt.Errorf("paths.assets_dir and paths.pages_dir must differ (both are %q)", c.Paths.AssetsDir)
	}
	return nil
}

func (c *Config) validateGenerator() error {
	if strings.ContainsAny(c.Generator.DescriptorName, `/\`) {
		return fmt.Errorf("generator.descriptor_name must be a bare filename, got %q", c.Generator.DescriptorName)
	}
	if c.Generator.PageExtension == "." {
		return errors.New("generator.page_extension must name an extension")
	}
	return nil
}
