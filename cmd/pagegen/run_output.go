package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pagegen/internal/config"
	"pagegen/internal/generate"
)

// descriptorLabel shortens an absolute descriptor path to its location
// inside the assets tree.
func descriptorLabel(cfg *config.Config, path string) string {
	rel, err := filepath.Rel(cfg.Paths.AssetsDir, path)
	if err != nil {
		return path
	}
	return rel
}

func printBuildResult(out io.Writer, cfg *config.Config, result *generate.BuildResult) {
	if !result.Clear.Missing {
		fmt.Fprintf(out, "Cleared %d generated pages (kept %d)\n", len(result.Clear.Deleted), result.Clear.Kept)
	}

	if len(result.Outcomes) == 0 {
		fmt.Fprintln(out, "No descriptors found under", cfg.Paths.AssetsDir)
	} else {
		rows := make([][]string, 0, len(result.Outcomes))
		for _, outcome := range result.Outcomes {
			rows = append(rows, []string{
				descriptorLabel(cfg, outcome.Descriptor),
				outcome.Page,
				string(outcome.Status),
				outcome.Detail,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Descriptor", "Page", "Status", "Detail"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}

	fmt.Fprintf(out, "%d written, %d skipped, %d failed in %s\n",
		result.Written(), result.Skipped(), result.Failed(), result.Duration.Round(time.Millisecond))
}

func writeBuildResultJSON(cmd *cobra.Command, cfg *config.Config, result *generate.BuildResult) error {
	type jsonOutcome struct {
		Descriptor string `json:"descriptor"`
		Page       string `json:"page,omitempty"`
		Status     string `json:"status"`
		Detail     string `json:"detail,omitempty"`
	}
	outcomes := make([]jsonOutcome, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		outcomes = append(outcomes, jsonOutcome{
			Descriptor: descriptorLabel(cfg, outcome.Descriptor),
			Page:       outcome.Page,
			Status:     string(outcome.Status),
			Detail:     outcome.Detail,
		})
	}
	return writeJSON(cmd, map[string]any{
		"cleared": map[string]any{
			"deleted":  append([]string{}, result.Clear.Deleted...),
			"kept":     result.Clear.Kept,
			"failures": result.Clear.Failures,
			"missing":  result.Clear.Missing,
		},
		"outcomes": outcomes,
		"written":  result.Written(),
		"skipped":  result.Skipped(),
		"failed":   result.Failed(),
		"duration": result.Duration.String(),
	})
}

func printClearResult(out io.Writer, cfg *config.Config, result *generate.ClearResult) {
	if result.Missing {
		fmt.Fprintf(out, "Pages directory %s does not exist; nothing to clear\n", cfg.Paths.PagesDir)
		return
	}
	for _, name := range result.Deleted {
		fmt.Fprintf(out, "Removed %s\n", name)
	}
	fmt.Fprintf(out, "%d removed, %d kept, %d failures\n", len(result.Deleted), result.Kept, result.Failures)
}

func writeClearResultJSON(cmd *cobra.Command, result *generate.ClearResult) error {
	return writeJSON(cmd, map[string]any{
		"deleted":  append([]string{}, result.Deleted...),
		"kept":     result.Kept,
		"failures": result.Failures,
		"missing":  result.Missing,
	})
}
