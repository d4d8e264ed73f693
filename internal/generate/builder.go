package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pagegen/internal/config"
	"pagegen/internal/descriptor"
	"pagegen/internal/logging"
	"pagegen/internal/page"
)

// Builder regenerates the pages directory from the assets tree.
type Builder struct {
	cfg     *config.Config
	logger  *slog.Logger
	cleaner *Cleaner
}

// NewBuilder constructs a builder and its embedded cleaner.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "builder"),
		cleaner: NewCleaner(cfg, logger),
	}
}

// Build clears the pages directory, recreates it, and writes one page per
// descriptor found in the assets tree. Descriptor-level problems are
// recorded in the result and logged; the returned error is reserved for
// conditions that prevent the run itself (clear failure, pages directory
// creation, missing assets root).
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	cleared, err := b.cleaner.Clear(ctx)
	if err != nil {
		return nil, err
	}
	result := &BuildResult{Clear: *cleared}

	pagesDir := b.cfg.Paths.PagesDir
	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create pages directory %q: %w", pagesDir, err)
	}

	assetsDir := b.cfg.Paths.AssetsDir
	descriptorName := b.cfg.Generator.DescriptorName
	walkErr := filepath.WalkDir(assetsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == assetsDir {
				return err
			}
			b.logger.Warn("skipping unreadable path", logging.String("path", path), logging.Error(err))
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		descPath := filepath.Join(path, descriptorName)
		if _, err := os.Stat(descPath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				b.logger.Warn("cannot stat descriptor", logging.String("descriptor", descPath), logging.Error(err))
			}
			return nil
		}

		result.Outcomes = append(result.Outcomes, b.processDescriptor(descPath))
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk assets tree %q: %w", assetsDir, walkErr)
	}

	result.Duration = time.Since(start)
	b.logger.Info("build finished",
		logging.Int("written", result.Written()),
		logging.Int("skipped", result.Skipped()),
		logging.Int("failed", result.Failed()),
		logging.Duration("duration", result.Duration))
	return result, nil
}

// processDescriptor runs the per-descriptor pipeline: parse, resolve
// content, merge, derive the page name, write. The page body is assembled
// fully in memory, so a failure before the write leaves no partial file.
func (b *Builder) processDescriptor(path string) Outcome {
	outcome := Outcome{Descriptor: path}

	desc, err := descriptor.ParseFile(path)
	if err != nil {
		if errors.Is(err, descriptor.ErrNoHeader) || errors.Is(err, descriptor.ErrNoContent) {
			outcome.Status = StatusSkipped
			outcome.Detail = err.Error()
			b.logger.Warn("descriptor skipped", logging.String("descriptor", path), logging.Error(err))
		} else {
			outcome.Status = StatusFailed
			outcome.Detail = err.Error()
			b.logger.Error("descriptor unreadable", logging.String("descriptor", path), logging.Error(err))
		}
		return outcome
	}

	content, err := os.ReadFile(desc.ContentPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			outcome.Status = StatusSkipped
			outcome.Detail = fmt.Sprintf("content file %s does not exist", desc.ContentPath)
			b.logger.Warn("descriptor skipped", logging.String("descriptor", path), logging.String("content", desc.ContentPath), logging.String("reason", "content file missing"))
		} else {
			outcome.Status = StatusFailed
			outcome.Detail = err.Error()
			b.logger.Error("content unreadable", logging.String("descriptor", path), logging.Error(err))
		}
		return outcome
	}

	rel, err := filepath.Rel(b.cfg.Paths.AssetsDir, desc.Dir)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
		b.logger.Error("cannot derive page name", logging.String("descriptor", path), logging.Error(err))
		return outcome
	}
	name := page.FileName(rel, b.cfg.Generator.PageExtension)

	target := filepath.Join(b.cfg.Paths.PagesDir, name)
	if err := os.WriteFile(target, page.Render(desc.Properties, string(content)), 0o644); err != nil {
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
		b.logger.Error("cannot write page", logging.String("page", name), logging.Error(err))
		return outcome
	}

	outcome.Status = StatusWritten
	outcome.Page = name
	b.logger.Info("page written", logging.String("page", name), logging.String("descriptor", path))
	return outcome
}
