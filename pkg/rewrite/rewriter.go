package rewrite

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"
)

// RewriteResult contains the results of applying a rule set to one file
type RewriteResult struct {
	// WasModified indicates if any rewrites were made
	WasModified bool

	// ReplacementCount is the number of rewrites made
	ReplacementCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Rewriter defines the interface for rewrite operations
type Rewriter interface {
	// RewriteText applies the compiled rules to the content, in order.
	// Returns a RewriteResult containing the modified content and metadata.
	RewriteText(ctx context.Context, content io.Reader, rules []CompiledRule) (*RewriteResult, error)
}

// RegexRewriter implements Rewriter using regular-expression replacement
type RegexRewriter struct {
	// Path scopes file-specific rules; empty applies every rule
	Path string
}

// NewRegexRewriter creates a new RegexRewriter scoped to the given path
func NewRegexRewriter(path string) *RegexRewriter {
	return &RegexRewriter{Path: path}
}

// RewriteText implements Rewriter.RewriteText
func (r *RegexRewriter) RewriteText(ctx context.Context, content io.Reader, rules []CompiledRule) (*RewriteResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RewriteResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule to the output of the previous one
	current := string(originalContent)
	for _, rule := range rules {
		if !rule.AppliesTo(r.Path) {
			continue
		}

		matches := rule.re.FindAllStringIndex(current, -1)
		if len(matches) == 0 {
			continue
		}

		next := rule.re.ReplaceAllString(current, rule.replace)
		if next != current {
			result.WasModified = true
			result.ReplacementCount += len(matches)
		}
		current = next
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content

