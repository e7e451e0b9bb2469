package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		strict       bool
		async        bool
		backup       bool
		legacyOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Apply the configured rewrites to all targets",
		Long: `Run rewrites every target file in place.
It will:
1. Load the config and expand glob targets
2. Rewrite each target (atomic write: temp file plus rename)
3. Report one outcome per target and a final summary

A failure on one target never stops the rest. The exit status is always
zero unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx).With().Str("command", "run").Logger()
			ctx = logger.WithContext(ctx)

			cfg, err := rootOpts.Resolve(ctx, args)
			if err != nil {
				return err
			}
			if backup {
				cfg.Backup = true
			}
			if async {
				cfg.Async = true
			}

			userLogger := log.New(ctx, log.Options{Legacy: legacyOutput})
			userLogger.Header(cfg.String())
			manager := status.New(&logger)

			op, err := operation.NewRenameOperation(operation.Options{
				Config:   cfg,
				Files:    manager,
				Reporter: manager,
				User:     userLogger,
				Logger:   &logger,
			})
			if err != nil {
				return errors.Errorf("creating rename operation: %w", err)
			}

			if err := operation.NewRunner(&logger).Run(ctx, op); err != nil {
				return errors.Errorf("running rename: %w", err)
			}

			summary := manager.Summary(ctx)
			if strict && !summary.Ok() {
				return errors.Errorf("%d of %d targets failed", summary.Failed, summary.Total())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit nonzero when any target fails")
	cmd.Flags().BoolVar(&async, "async", false, "process targets concurrently")
	cmd.Flags().BoolVar(&backup, "backup", false, "write a .bak copy before rewriting")
	cmd.Flags().BoolVar(&legacyOutput, "legacy-output", false, "print the original script's plain output lines")

	return cmd
}
