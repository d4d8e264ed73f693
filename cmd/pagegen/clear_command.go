package main

import (
	"github.com/spf13/cobra"

	"pagegen/internal/generate"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete generated pages, leaving handwritten files untouched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, ctx, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run summary as JSON")
	return cmd
}

func runClear(cmd *cobra.Command, ctx *commandContext, jsonOut bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	lock, err := acquireRunLock(cfg)
	if err != nil {
		return err
	}
	defer releaseRunLock(lock, logger)

	result, err := generate.NewCleaner(cfg, logger).Clear(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return writeClearResultJSON(cmd, result)
	}
	printClearResult(cmd.OutOrStdout(), cfg, result)
	return nil
}
