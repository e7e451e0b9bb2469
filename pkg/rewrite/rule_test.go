package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Compile(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		wantError string
	}{
		{
			name: "valid_rule",
			rule: Rule{Identifier: "AevatarAIToolResult", From: "Success", To: "CreateSuccess"},
		},
		{
			name:      "missing_identifier",
			rule:      Rule{From: "Success", To: "CreateSuccess"},
			wantError: "identifier is required",
		},
		{
			name:      "missing_from",
			rule:      Rule{Identifier: "X", To: "Y"},
			wantError: "from is required",
		},
		{
			name:      "missing_to",
			rule:      Rule{Identifier: "X", From: "Y"},
			wantError: "to is required",
		},
		{
			name: "identifier_with_regex_metacharacters",
			rule: Rule{Identifier: "pkg.Result", From: "Ok", To: "NewOk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := tt.rule.Compile()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.True(t, compiled.AppliesTo("any/file.cs"))
		})
	}
}

func TestRuleSet_Compile(t *testing.T) {
	tests := []struct {
		name      string
		set       RuleSet
		wantLen   int
		wantError string
	}{
		{
			name:    "default_rules",
			set:     DefaultRules(),
			wantLen: 2,
		},
		{
			name: "mixed_set_keeps_declaration_order",
			set: RuleSet{
				Rules:        []Rule{{Identifier: "A", From: "B", To: "C"}},
				Replacements: []Replacement{{Old: "x", New: "y"}},
				Patterns:     []Pattern{{Match: `a+`, Replace: "b"}},
			},
			wantLen: 3,
		},
		{
			name:      "invalid_rule_reported_with_index",
			set:       RuleSet{Rules: []Rule{{Identifier: "A", From: "B", To: "C"}, {From: "B"}}},
			wantError: "rule 1",
		},
		{
			name:      "invalid_replacement",
			set:       RuleSet{Replacements: []Replacement{{New: "y"}}},
			wantError: "old is required",
		},
		{
			name:      "invalid_pattern",
			set:       RuleSet{Patterns: []Pattern{{Match: `[unclosed`}}},
			wantError: "compiling pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := tt.set.Compile()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, compiled, tt.wantLen)
		})
	}
}

func TestRuleSet_IsEmpty(t *testing.T) {
	assert.True(t, RuleSet{}.IsEmpty())
	assert.False(t, DefaultRules().IsEmpty())
	assert.False(t, RuleSet{Patterns: []Pattern{{Match: "a"}}}.IsEmpty())
}

func TestDefaultRules(t *testing.T) {
	set := DefaultRules()
	require.Len(t, set.Rules, 2)
	assert.Equal(t, "Success", set.Rules[0].From)
	assert.Equal(t, "CreateSuccess", set.Rules[0].To)
	assert.Equal(t, "Failure", set.Rules[1].From)
	assert.Equal(t, "CreateFailure", set.Rules[1].To)
}
