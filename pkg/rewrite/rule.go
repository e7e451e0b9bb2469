package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule represents a method-call rename on a fixed receiver identifier.
// It rewrites every occurrence of `<Identifier>.<From>(` into
// `<Identifier>.<To>(`. The opening parenthesis is part of the match, so an
// already-renamed call no longer matches and a second run is a no-op.
type Rule struct {
	Identifier string `json:"identifier" yaml:"identifier" hcl:"identifier"` // Receiver the rule is scoped to
	From       string `json:"from" yaml:"from" hcl:"from"`                   // Method name to replace
	To         string `json:"to" yaml:"to" hcl:"to"`                         // New method name
}

// 🔄 Replacement represents a literal string replacement in files
type Replacement struct {
	Old  string  `json:"old" yaml:"old" hcl:"old"`                                 // Original string to replace
	New  string  `json:"new" yaml:"new" hcl:"new,optional"`                        // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // Optional specific file to apply to
}

// 🔄 Pattern represents a raw regular-expression replacement
type Pattern struct {
	Match   string `json:"match" yaml:"match" hcl:"match"`                // Regular expression to match
	Replace string `json:"replace" yaml:"replace" hcl:"replace,optional"` // Replacement text ($1 style refs allowed)
}

// 🎯 CompiledRule is a single ready-to-apply rewrite
type CompiledRule struct {
	re      *regexp.Regexp
	replace string
	file    string // empty means "all files"
}

// 📝 String returns a human-readable form of the rule
func (c CompiledRule) String() string {
	return fmt.Sprintf("%s -> %s", c.re.String(), c.replace)
}

// AppliesTo reports whether the rule is in scope for the given path
func (c CompiledRule) AppliesTo(path string) bool {
	return c.file == "" || c.file == path
}

// Compile turns a method-rename rule into its regex form
func (r Rule) Compile() (CompiledRule, error) {
	if r.Identifier == "" {
		return CompiledRule{}, errors.Errorf("rule: identifier is required")
	}
	if r.From == "" {
		return CompiledRule{}, errors.Errorf("rule: from is required")
	}
	if r.To == "" {
		return CompiledRule{}, errors.Errorf("rule: to is required")
	}

	re, err := regexp.Compile(regexp.QuoteMeta(r.Identifier) + `\.` + regexp.QuoteMeta(r.From) + `\(`)
	if err != nil {
		return CompiledRule{}, errors.Errorf("compiling rule %s.%s: %w", r.Identifier, r.From, err)
	}

	return CompiledRule{
		re:      re,
		replace: literalReplacement(r.Identifier + "." + r.To + "("),
	}, nil
}

// Compile turns a literal replacement into its regex form
func (r Replacement) Compile() (CompiledRule, error) {
	if r.Old == "" {
		return CompiledRule{}, errors.Errorf("replacement: old is required")
	}

	c := CompiledRule{
		re:      regexp.MustCompile(regexp.QuoteMeta(r.Old)),
		replace: literalReplacement(r.New),
	}
	if r.File != nil {
		c.file = *r.File
	}
	return c, nil
}

// Compile validates and compiles a raw regex pattern
func (p Pattern) Compile() (CompiledRule, error) {
	if p.Match == "" {
		return CompiledRule{}, errors.Errorf("pattern: match is required")
	}

	re, err := regexp.Compile(p.Match)
	if err != nil {
		return CompiledRule{}, errors.Errorf("compiling pattern %q: %w", p.Match, err)
	}

	return CompiledRule{re: re, replace: p.Replace}, nil
}

// literalReplacement escapes $ so replacement text is never treated
// as a capture reference. Raw patterns skip this and keep $1 semantics.
func literalReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// 📚 RuleSet groups every kind of rewrite the config can declare
type RuleSet struct {
	Rules        []Rule        `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
	Patterns     []Pattern     `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"pattern,block"`
}

// IsEmpty reports whether the set declares no rewrites at all
func (s RuleSet) IsEmpty() bool {
	return len(s.Rules) == 0 && len(s.Replacements) == 0 && len(s.Patterns) == 0
}

// 🏭 Compile compiles the whole set in declaration order:
// method renames first, then literal replacements, then raw patterns.
func (s RuleSet) Compile() ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(s.Rules)+len(s.Replacements)+len(s.Patterns))

	for i, r := range s.Rules {
		c, err := r.Compile()
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	for i, r := range s.Replacements {
		c, err := r.Compile()
		if err != nil {
			return nil, errors.Errorf("replacement %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	for i, p := range s.Patterns {
		c, err := p.Compile()
		if err != nil {
			return nil, errors.Errorf("pattern %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}

	return compiled, nil
}

// 🎯 DefaultRules returns the factory-method renames this tool was born for.
// They apply whenever the config declares no rewrites of its own.
func DefaultRules() RuleSet {
	return RuleSet{
		Rules: []Rule{
			{Identifier: "AevatarAIToolResult", From: "Success", To: "CreateSuccess"},
			{Identifier: "AevatarAIToolResult", From: "Failure", To: "CreateFailure"},
		},
	}
}
