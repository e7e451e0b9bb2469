package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"gitlab.com/tozd/go/errors"
)

// starterConfig is the template written by `renamerc init`
const starterConfig = `# renamerc configuration
#
# Targets are processed in order. Globs (doublestar syntax) are allowed;
# literal paths are reported as "not found" when missing.
targets:
  - "src/**/*.cs"

# Method-call renames: <identifier>.<from>( becomes <identifier>.<to>(
rules:
  - identifier: AevatarAIToolResult
    from: Success
    to: CreateSuccess
  - identifier: AevatarAIToolResult
    from: Failure
    to: CreateFailure

# Literal replacements and raw regex patterns are also supported:
# replacements:
#   - old: "OldName"
#     new: "NewName"
# patterns:
#   - match: 'Result<(\w+)>'
#     replace: 'Outcome<$1>'

# backup: true   # write <path>.bak before rewriting
`

// NewInitCmd creates a new init command
func NewInitCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *rootOpts.ConfigFile

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
				return errors.Errorf("writing config file: %w", err)
			}

			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
