package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
targets:
  - src/a.cs
  - src/b.cs
rules:
  - identifier: AevatarAIToolResult
    from: Success
    to: CreateSuccess
backup: true
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.cs", "src/b.cs"}, cfg.Targets)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "AevatarAIToolResult", cfg.Rules[0].Identifier)
	assert.True(t, cfg.Backup)
	assert.Equal(t, path, cfg.Location())
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "targets": ["src/a.cs"],
  "replacements": [{"old": "Foo", "new": "Bar"}]
}`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.cs"}, cfg.Targets)
	require.Len(t, cfg.Replacements, 1)
	assert.Equal(t, "Foo", cfg.Replacements[0].Old)
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfig(t, "config.hcl", `
targets = ["src/a.cs"]

rule {
  identifier = "AevatarAIToolResult"
  from       = "Failure"
  to         = "CreateFailure"
}

pattern {
  match   = "Result<(\\w+)>"
  replace = "Outcome<$1>"
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.cs"}, cfg.Targets)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "Failure", cfg.Rules[0].From)
	require.Len(t, cfg.Patterns, 1)
}

func TestLoad_DotRenamercFallsBackToHCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".renamerc")
	require.NoError(t, os.WriteFile(path, []byte(`targets = ["src/a.cs"]`), 0644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.cs"}, cfg.Targets)
}

func TestLoad_RulesOnly(t *testing.T) {
	// A config may declare only rules; targets come per invocation
	path := writeConfig(t, "config.yaml", `
rules:
  - identifier: AevatarAIToolResult
    from: Success
    to: CreateSuccess
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Targets)
	require.Len(t, cfg.Rules, 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantError string
	}{
		{
			name:      "unsupported_extension",
			file:      "config.toml",
			content:   `targets = ["a"]`,
			wantError: "unsupported file extension",
		},
		{
			name:      "unknown_yaml_field",
			file:      "config.yaml",
			content:   "targets: [a.cs]\nbogus: true\n",
			wantError: "parsing YAML",
		},
		{
			name:      "unknown_json_field",
			file:      "config.json",
			content:   `{"targets": ["a.cs"], "bogus": true}`,
			wantError: "parsing JSON",
		},
		{
			name:      "bad_pattern",
			file:      "config.yaml",
			content:   "targets: [a.cs]\npatterns:\n  - match: '[unclosed'\n",
			wantError: "validating config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
