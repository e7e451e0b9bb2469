// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/pkg/log"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "A tool for renaming method calls across source files",
		Long: `renamerc applies literal method-call renames (and other configured text
rewrites) to a list of target files, reporting the outcome for each file.
Targets come from a config file or from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Create root options
	opts := newRootOpts()

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(opts),
		commands.NewCheckCmd(opts),
		commands.NewInitCmd(opts),
	)

	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := log.New(ctx, log.Options{})
		userLogger.Error("command failed", err)
		os.Exit(1)
	}
}
