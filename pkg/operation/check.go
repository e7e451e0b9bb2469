package operation

import (
	"bytes"
	"context"

	"github.com/walteh/renamerc/pkg/rewrite"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔍 NewCheckOperation creates the dry-run operation: same loop as rename,
// nothing written to disk
func NewCheckOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &checkOperation{BaseOperation: base}, nil
}

// 🔍 checkOperation implements the dry-run operation
type checkOperation struct {
	BaseOperation
}

func (op *checkOperation) Name() string {
	return "check"
}

// 🏃 Execute evaluates every target and reports what a rename run would do
func (op *checkOperation) Execute(ctx context.Context) error {
	rules, err := op.Config.RuleSet().Compile()
	if err != nil {
		return errors.Errorf("compiling rewrites: %w", err)
	}

	targets, err := op.Config.ExpandTargets(ctx)
	if err != nil {
		return errors.Errorf("expanding targets: %w", err)
	}

	for _, target := range targets {
		entry := op.checkFile(ctx, target, rules)
		op.Reporter.Record(ctx, entry)
		op.User.LogOutcome(entry)
	}

	op.User.LogSummary(op.Reporter.Summary(ctx))
	return nil
}

// 📄 checkFile classifies one target without touching it
func (op *checkOperation) checkFile(ctx context.Context, target string, rules []rewrite.CompiledRule) status.FileEntry {
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

	return status.FileEntry{
		Path:         target,
		Outcome:      status.OutcomeUpdated,
		Replacements: result.ReplacementCount,
	}
}
