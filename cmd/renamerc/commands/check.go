package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [targets...]",
		Short: "Dry run: report which targets a run would change",
		Long: `Check evaluates every target without writing anything.
It will:
1. Load the config and expand glob targets
2. Apply the rewrites in memory only
3. Render a table of would-be outcomes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx).With().Str("command", "check").Logger()
			ctx = logger.WithContext(ctx)

			cfg, err := rootOpts.Resolve(ctx, args)
			if err != nil {
				return err
			}

			userLogger := log.New(ctx, log.Options{})
			manager := status.New(&logger)

			op, err := operation.NewCheckOperation(operation.Options{
				Config:   cfg,
				Files:    manager,
				Reporter: manager,
				User:     userLogger,
				Logger:   &logger,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			if err := operation.NewRunner(&logger).Run(ctx, op); err != nil {
				return errors.Errorf("running check: %w", err)
			}

			return renderCheckTable(manager.Summary(ctx))
		},
	}

	return cmd
}

// renderCheckTable renders per-target outcomes as a table
func renderCheckTable(summary status.Summary) error {
	data := pterm.TableData{{"Target", "Outcome", "Replacements"}}
	for _, entry := range summary.Entries {
		replacements := ""
		if entry.Outcome == status.OutcomeUpdated {
			replacements = fmt.Sprintf("%d", entry.Replacements)
		}
		data = append(data, []string{entry.Path, entry.Outcome.String(), replacements})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	return nil
}

// TODO(dr.methodical): 📝 Render a unified diff preview for would-change targets

