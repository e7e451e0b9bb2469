package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config represents the complete configuration
type Config struct {
	// Targets is the ordered list of file paths and/or glob patterns to
	// rewrite. Literal paths are kept even when missing so a run can
	// still report them as not found.
	Targets []string `json:"targets" yaml:"targets" hcl:"targets,optional"`

	Rules        []rewrite.Rule        `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	Replacements []rewrite.Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
	Patterns     []rewrite.Pattern     `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"pattern,block"`

	Backup bool `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"` // Write <path>.bak before rewriting
	Async  bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`    // Process targets concurrently

	// location is the path the config was loaded from
	location string
}

// 📝 Location returns the path the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 RuleSet returns the configured rewrites, falling back to the
// built-in factory-method renames when the config declares none.
func (cfg *Config) RuleSet() rewrite.RuleSet {
	set := rewrite.RuleSet{
		Rules:        cfg.Rules,
		Replacements: cfg.Replacements,
		Patterns:     cfg.Patterns,
	}
	if set.IsEmpty() {
		return rewrite.DefaultRules()
	}
	return set
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate(ctx context.Context) error {
	if len(cfg.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	return cfg.ValidateRewrites(ctx)
}

// 🔍 ValidateRewrites checks the rewrite set alone, ignoring targets.
// Loading uses this so a rules-only config file stays loadable: the
// target list may arrive later as positional arguments.
func (cfg *Config) ValidateRewrites(ctx context.Context) error {
	// Compiling surfaces every bad rule, replacement, and pattern
	if _, err := cfg.RuleSet().Compile(); err != nil {
		return errors.Errorf("validating rewrites: %w", err)
	}

	return nil
}

// 🔍 ExpandTargets resolves glob patterns in the target list, preserving
// list order. A pattern expands to its (sorted) matches; a literal path
// passes through untouched, present on disk or not. No deduplication.
func (cfg *Config) ExpandTargets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var targets []string
	for _, target := range cfg.Targets {
		if !isGlobPattern(target) {
			targets = append(targets, target)
			continue
		}

		matches, err := doublestar.FilepathGlob(target)
		if err != nil {
			return nil, errors.Errorf("expanding glob %q: %w", target, err)
		}
		if len(matches) == 0 {
			logger.Debug().Str("pattern", target).Msg("glob matched no files")
			continue
		}

		sort.Strings(matches)
		targets = append(targets, matches...)
	}

	return targets, nil
}

// isGlobPattern reports whether the target contains glob metacharacters
func isGlobPattern(target string) bool {
	return strings.ContainsAny(target, "*?[{")
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	set := cfg.RuleSet()
	rewrites := len(set.Rules) + len(set.Replacements) + len(set.Patterns)
	return fmt.Sprintf("%d targets, %d rewrites", len(cfg.Targets), rewrites)
}
