package opts

import (
	"context"
	"os"

	"github.com/walteh/renamerc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// ConfigFile points at the config-path flag; dereferenced at run
	// time so flag parsing has already happened
	ConfigFile *string
}

// Resolve loads the configuration, letting positional arguments stand in
// for (or override) the configured target list. With targets on the
// command line a missing config file is fine: the built-in rules apply.
func (o *RootOpts) Resolve(ctx context.Context, args []string) (*config.Config, error) {
	path := *o.ConfigFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if len(args) == 0 {
			return nil, errors.Errorf("config file %s not found and no targets given", path)
		}
		cfg := &config.Config{Targets: args}
		if err := cfg.Validate(ctx); err != nil {
			return nil, errors.Errorf("validating config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if len(args) > 0 {
		cfg.Targets = args
	}

	// Validated here, not at load time, so a rules-only config file
	// works as long as targets arrive on the command line
	if err := cfg.Validate(ctx); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
