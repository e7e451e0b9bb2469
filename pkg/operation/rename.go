package operation

import (
	"bytes"
	"context"

	"github.com/walteh/renamerc/pkg/rewrite"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📦 NewRenameOperation creates the operation that applies the configured
// rewrites to every target
func NewRenameOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &renameOperation{BaseOperation: base}, nil
}

// 📦 renameOperation implements the rename operation
type renameOperation struct {
	BaseOperation
}

func (op *renameOperation) Name() string {
	return "rename"
}

// 🏃 Execute runs the rename operation. Each target is evaluated exactly
// once; a failure on one target never stops the rest.
func (op *renameOperation) Execute(ctx context.Context) error {
	rules, err := op.Config.RuleSet().Compile()
	if err != nil {
		return errors.Errorf("compiling rewrites: %w", err)
	}

	targets, err := op.Config.ExpandTargets(ctx)
	if err != nil {
		return errors.Errorf("expanding targets: %w", err)
	}

	if op.Config.Async {
		op.processAsync(ctx, targets, rules)
	} else {
		for _, target := range targets {
			op.processTarget(ctx, target, rules)
		}
	}

	op.User.LogSummary(op.Reporter.Summary(ctx))
	op.User.LogCompletion()
	return nil
}

// ⚡ processAsync rewrites targets concurrently. Outcomes are recorded in
// completion order, not list order.
func (op *renameOperation) processAsync(ctx context.Context, targets []string, rules []rewrite.CompiledRule) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			op.processTarget(ctx, target, rules)
			return nil
		})
	}

	// processTarget never returns an error; failures are recorded per target
	_ = g.Wait()
}

// 📄 processTarget evaluates a single target and records its outcome
func (op *renameOperation) processTarget(ctx context.Context, target string, rules []rewrite.CompiledRule) {
	entry := op.updateFile(ctx, target, rules)
	op.Reporter.Record(ctx, entry)
	op.User.LogOutcome(entry)
}

// ✏️ updateFile reads, rewrites, and writes back one file. Every failure is
// caught here and classified; nothing escapes to the driver loop.
func (op *renameOperation) updateFile(ctx context.Context, target string, rules []rewrite.CompiledRule) status.FileEntry {
	exists, err := op.Files.FileExists(ctx, target)
	if err != nil {
		return status.FileEntry{Path: target, Outcome: status.OutcomeFailed, Err: err}
	}
	if !exists {
		return status.FileEntry{Path: target, Outcome: status.OutcomeNotFound}
	}

	content, err := op.Files.ReadFile(ctx, target)
	if err != nil {
		return status.FileEntry{Path: target, Outcome: status.OutcomeFailed, Err: err}
	}

	result, err := rewrite.NewRegexRewriter(target).RewriteText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return status.FileEntry{Path: target, Outcome: status.OutcomeFailed, Err: err}
	}

	if !result.WasModified {
		return status.FileEntry{Path: target, Outcome: status.OutcomeUnchanged}
	}

	if op.Config.Backup {
		if err := op.Files.BackupFile(ctx, target); err != nil {
			return status.FileEntry{Path: target, Outcome: status.OutcomeFailed, Err: err}
		}
	}

	if err := op.Files.WriteFileAtomic(ctx, target, result.ModifiedContent); err != nil {
		return status.FileEntry{Path: target, Outcome: status.OutcomeFailed, Err: err}
	}

	return status.FileEntry{
		Path:         target,
		Outcome:      status.OutcomeUpdated,
		Replacements: result.ReplacementCount,
	}
}
