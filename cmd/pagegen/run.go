package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"pagegen/internal/config"
	"pagegen/internal/logging"
)

// newRunLogger builds the configured logger and stamps every record of this
// invocation with a fresh run id, so interleaved log files stay separable.
func newRunLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger.With(logging.String("run_id", uuid.NewString())), nil
}

// acquireRunLock takes the single-instance lock. Build and clear both mutate
// the pages directory, so concurrent runs would race on the same files.
func acquireRunLock(cfg *config.Config) (*flock.Flock, error) {
	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another pagegen instance is already running")
	}
	return lock, nil
}

func releaseRunLock(lock *flock.Flock, logger *slog.Logger) {
	if err := lock.Unlock(); err != nil {
		logger.Warn("failed to release run lock", logging.Error(err))
	}
}
