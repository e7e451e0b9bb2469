package status

import (
	"fmt"
)

// OutcomeFormatter defines how per-file outcomes and summaries are rendered
type OutcomeFormatter interface {
	// FormatOutcome formats a single per-file result line
	FormatOutcome(entry FileEntry) string

	// FormatSummary formats the end-of-run summary line
	FormatSummary(summary Summary) string

	// FormatCompletion formats the fixed closing line
	FormatCompletion() string
}

// LegacyFormatter reproduces the original script's console lines verbatim,
// for automation that greps the output of the tool this one replaced.
type LegacyFormatter struct{}

// NewLegacyFormatter creates a new LegacyFormatter
func NewLegacyFormatter() *LegacyFormatter {
	return &LegacyFormatter{}
}

// FormatOutcome formats a per-file result line in the legacy wording.
// An unchanged file still reports "Updated": the original script printed
// that for every file it processed, matched or not.
func (f *LegacyFormatter) FormatOutcome(entry FileEntry) string {
	switch entry.Outcome {
	case OutcomeNotFound:
		return fmt.Sprintf("File not found: %s", entry.Path)
	case OutcomeFailed:
		return fmt.Sprintf("Error updating %s: %v", entry.Path, entry.Err)
	default:
		return fmt.Sprintf("Updated: %s", entry.Path)
	}
}

// FormatSummary is empty in legacy mode; the original printed no totals
func (f *LegacyFormatter) FormatSummary(summary Summary) string {
	return ""
}

// FormatCompletion returns the original closing line
func (f *LegacyFormatter) FormatCompletion() string {
	return "Method name updates completed!"
}

// DefaultFormatter renders outcomes with emojis and replacement counts
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatOutcome formats a per-file result line with emojis
func (f *DefaultFormatter) FormatOutcome(entry FileEntry) string {
	switch entry.Outcome {
	case OutcomeUpdated:
		return fmt.Sprintf("📝 Updated %s (%d replacements)", entry.Path, entry.Replacements)
	case OutcomeUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", entry.Path)
	case OutcomeNotFound:
		return fmt.Sprintf("❓ Not found %s", entry.Path)
	case OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s: %v", entry.Path, entry.Err)
	default:
		return fmt.Sprintf("❔ Unknown %s", entry.Path)
	}
}

// FormatSummary formats the end-of-run totals
func (f *DefaultFormatter) FormatSummary(summary Summary) string {
	return fmt.Sprintf("✅ %d updated, %d unchanged, %d not found, %d failed",
		summary.Updated, summary.Unchanged, summary.NotFound, summary.Failed)
}

// FormatCompletion returns the closing line
func (f *DefaultFormatter) FormatCompletion() string {
	return "Method name updates completed!"
}
