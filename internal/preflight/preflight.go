package preflight

import (
	"pagegen/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config. The descriptor
// scan only runs when the assets directory itself checks out, so a missing
// tree is reported once.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	assets := CheckReadableDirectory("Assets directory", cfg.Paths.AssetsDir)
	results = append(results, assets)

	results = append(results, CheckWritableDirectory("Pages directory", cfg.Paths.PagesDir))
	results = append(results, CheckWritableDirectory("Log directory", cfg.Paths.LogDir))

	if assets.Passed {
		results = append(results, CheckDescriptors(cfg))
	}

	return results
}
