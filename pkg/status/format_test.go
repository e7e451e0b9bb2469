package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestLegacyFormatter_FormatOutcome(t *testing.T) {
	f := NewLegacyFormatter()

	tests := []struct {
		name  string
		entry FileEntry
		want  string
	}{
		{
			name:  "updated",
			entry: FileEntry{Path: "/src/a.cs", Outcome: OutcomeUpdated, Replacements: 2},
			want:  "Updated: /src/a.cs",
		},
		{
			name:  "unchanged_still_prints_updated",
			entry: FileEntry{Path: "/src/b.cs", Outcome: OutcomeUnchanged},
			want:  "Updated: /src/b.cs",
		},
		{
			name:  "not_found",
			entry: FileEntry{Path: "/src/c.cs", Outcome: OutcomeNotFound},
			want:  "File not found: /src/c.cs",
		},
		{
			name:  "failed",
			entry: FileEntry{Path: "/src/d.cs", Outcome: OutcomeFailed, Err: errors.New("permission denied")},
			want:  "Error updating /src/d.cs: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatOutcome(tt.entry))
		})
	}
}

func TestLegacyFormatter_FormatCompletion(t *testing.T) {
	assert.Equal(t, "Method name updates completed!", NewLegacyFormatter().FormatCompletion())
}

func TestLegacyFormatter_FormatSummaryIsEmpty(t *testing.T) {
	assert.Empty(t, NewLegacyFormatter().FormatSummary(Summary{Updated: 3}))
}

func TestDefaultFormatter_FormatOutcome(t *testing.T) {
	f := NewDefaultFormatter()

	assert.Contains(t, f.FormatOutcome(FileEntry{Path: "a.cs", Outcome: OutcomeUpdated, Replacements: 2}), "2 replacements")
	assert.Contains(t, f.FormatOutcome(FileEntry{Path: "a.cs", Outcome: OutcomeUnchanged}), "Unchanged")
	assert.Contains(t, f.FormatOutcome(FileEntry{Path: "a.cs", Outcome: OutcomeNotFound}), "Not found")
	assert.Contains(t, f.FormatOutcome(FileEntry{Path: "a.cs", Outcome: OutcomeFailed, Err: errors.New("boom")}), "boom")
}

func TestDefaultFormatter_FormatSummary(t *testing.T) {
	got := NewDefaultFormatter().FormatSummary(Summary{Updated: 2, Unchanged: 1, NotFound: 3, Failed: 4})
	assert.Equal(t, "✅ 2 updated, 1 unchanged, 3 not found, 4 failed", got)
}
