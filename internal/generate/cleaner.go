package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pagegen/internal/config"
	"pagegen/internal/fileutil"
	"pagegen/internal/logging"
	"pagegen/internal/page"
)

// Cleaner removes previously generated pages from the pages directory.
type Cleaner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewCleaner constructs a cleaner for the configured pages directory.
func NewCleaner(cfg *config.Config, logger *slog.Logger) *Cleaner {
	return &Cleaner{cfg: cfg, logger: logging.NewComponentLogger(logger, "cleaner")}
}

// Clear deletes every direct entry of the pages directory that has the page
// extension and the ownership marker as its first line. Files that cannot be
// inspected or removed are logged and counted, never aborting the pass. A
// missing pages directory is reported through the result, not an error.
func (c *Cleaner) Clear(ctx context.Context) (*ClearResult, error) {
	pagesDir := c.cfg.Paths.PagesDir
	result := &ClearResult{}

	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Missing = true
			c.logger.Info("pages directory does not exist, nothing to clear", logging.String("pages", pagesDir))
			return result, nil
		}
		return nil, fmt.Errorf("read pages directory %q: %w", pagesDir, err)
	}

	extension := c.cfg.Generator.PageExtension
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}

		path := filepath.Join(pagesDir, entry.Name())
		firstLine, err := fileutil.FirstLine(path)
		if err != nil {
			result.Failures++
			c.logger.Warn("cannot inspect page candidate", logging.String("file", entry.Name()), logging.Error(err))
			continue
		}
		if !page.IsGenerated(firstLine) {
			result.Kept++
			continue
		}

		if err := os.Remove(path); err != nil {
			result.Failures++
			c.logger.Warn("cannot delete generated page", logging.String("file", entry.Name()), logging.Error(err))
			continue
		}
		result.Deleted = append(result.Deleted, entry.Name())
		c.logger.Debug("deleted generated page", logging.String("file", entry.Name()))
	}

	c.logger.Info("clear pass finished",
		logging.Int("deleted", len(result.Deleted)),
		logging.Int("kept", result.Kept),
		logging.Int("failures", result.Failures))
	return result, nil
}
