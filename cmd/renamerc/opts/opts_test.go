package opts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootOpts_Resolve(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".renamerc.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("targets:\n  - from-config.cs\n"), 0644))
	rulesOnlyPath := filepath.Join(dir, "rules-only.yaml")
	require.NoError(t, os.WriteFile(rulesOnlyPath, []byte("rules:\n  - identifier: A\n    from: B\n    to: C\n"), 0644))
	missingPath := filepath.Join(dir, "nope.yaml")

	tests := []struct {
		name        string
		configFile  string
		args        []string
		wantTargets []string
		wantError   string
	}{
		{
			name:        "config_targets",
			configFile:  configPath,
			wantTargets: []string{"from-config.cs"},
		},
		{
			name:        "args_override_config_targets",
			configFile:  configPath,
			args:        []string{"a.cs", "b.cs"},
			wantTargets: []string{"a.cs", "b.cs"},
		},
		{
			name:        "args_without_config_file",
			configFile:  missingPath,
			args:        []string{"a.cs"},
			wantTargets: []string{"a.cs"},
		},
		{
			name:        "args_supply_targets_for_rules_only_config",
			configFile:  rulesOnlyPath,
			args:        []string{"a.cs"},
			wantTargets: []string{"a.cs"},
		},
		{
			name:       "rules_only_config_without_args",
			configFile: rulesOnlyPath,
			wantError:  "at least one target is required",
		},
		{
			name:       "no_config_no_args",
			configFile: missingPath,
			wantError:  "not found and no targets given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &RootOpts{ConfigFile: &tt.configFile}
			cfg, err := opts.Resolve(context.Background(), tt.args)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTargets, cfg.Targets)
		})
	}
}
