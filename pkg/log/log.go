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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/status"
)

// 📢 UserLogger provides user-friendly feedback about rewrite outcomes.
// Every line is mirrored into zerolog for debugging.
type UserLogger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.OutcomeFormatter
	legacy    bool
	mu        sync.Mutex
}

// 🔧 Options configures a UserLogger
type Options struct {
	// Console is where user-facing lines go (defaults to os.Stdout)
	Console io.Writer

	// Legacy reproduces the original script's output verbatim:
	// plain lines, no prefixes, no summary
	Legacy bool
}

// 🏭 New creates a new user logger
func New(ctx context.Context, opts Options) *UserLogger {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	var formatter status.OutcomeFormatter = status.NewDefaultFormatter()
	if opts.Legacy {
		formatter = status.NewLegacyFormatter()
	}

	return &UserLogger{
		zlog:      *zerolog.Ctx(ctx),
		console:   console,
		formatter: formatter,
		legacy:    opts.Legacy,
	}
}

// 📝 LogOutcome logs a per-target result
func (u *UserLogger) LogOutcome(entry status.FileEntry) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := u.formatter.FormatOutcome(entry)
	if u.legacy {
		fmt.Fprintln(u.console, msg)
	} else {
		u.printer(entry.Outcome).Println(msg)
	}

	evt := u.zlog.Info()
	if entry.Outcome == status.OutcomeFailed {
		evt = u.zlog.Error().Err(entry.Err)
	}
	evt.Str("path", entry.Path).Str("outcome", entry.Outcome.String()).Msg(msg)
}

// printer picks the pterm printer matching the outcome
func (u *UserLogger) printer(outcome status.Outcome) *pterm.PrefixPrinter {
	switch outcome {
	case status.OutcomeUpdated:
		return pterm.Success.WithWriter(u.console)
	case status.OutcomeNotFound:
		return pterm.Warning.WithWriter(u.console)
	case status.OutcomeFailed:
		return pterm.Error.WithWriter(u.console)
	default:
		return pterm.Info.WithWriter(u.console)
	}
}

// 📊 LogSummary logs the end-of-run totals. Silent in legacy mode.
func (u *UserLogger) LogSummary(summary status.Summary) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// The legacy formatter renders no totals
	msg := u.formatter.FormatSummary(summary)
	if msg == "" {
		return
	}

	fmt.Fprintf(u.console, "\n%s %s\n",
		color.New(color.Bold, color.FgCyan).Sprint("renamerc"),
		color.New(color.Faint).Sprintf("• %d targets processed", summary.Total()))

	fmt.Fprintf(u.console, "  %s\n", msg)

	u.zlog.Info().
		Int("updated", summary.Updated).
		Int("unchanged", summary.Unchanged).
		Int("not_found", summary.NotFound).
		Int("failed", summary.Failed).
		Msg("run summary")
}

// 📝 LogCompletion logs the fixed closing line
func (u *UserLogger) LogCompletion() {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := u.formatter.FormatCompletion()
	if u.legacy {
		fmt.Fprintln(u.console, msg)
	} else {
		pterm.Success.WithWriter(u.console).Println(msg)
	}
	u.zlog.Info().Msg(msg)
}

// 📝 Header logs a run header. Silent in legacy mode.
func (u *UserLogger) Header(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.legacy {
		return
	}
	title := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(u.console, "\n%s %s\n\n", title, color.New(color.Faint).Sprint("• "+msg))
	u.zlog.Info().Msg(msg)
}

// 📝 Error logs an error message
func (u *UserLogger) Error(msg string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.legacy {
		fmt.Fprintf(u.console, "%s: %v\n", msg, err)
	} else {
		pterm.Error.WithWriter(u.console).Println(msg)
		if err != nil {
			pterm.Error.WithWriter(u.console).Println(err)
		}
	}
	u.zlog.Error().Err(err).Msg(msg)
}
