package main

import (
	"github.com/spf13/cobra"

	"pagegen/internal/generate"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Regenerate the pages directory from the assets tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run summary as JSON")
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, jsonOut bool) error {
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

	result, err := generate.NewBuilder(cfg, logger).Build(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return writeBuildResultJSON(cmd, cfg, result)
	}
	printBuildResult(cmd.OutOrStdout(), cfg, result)
	return nil
}
