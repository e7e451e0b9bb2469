package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// 🏃 Run executes an operation, honoring context cancellation
func (r *Runner) Run(ctx context.Context, op Operation) error {
	r.logger.Debug().Str("operation", op.Name()).Msg("running operation")

	errCh := make(chan error, 1)
	go func() {
		errCh <- op.Execute(ctx)
	}()

	select {
	case <-ctx.Done():
		return errors.Errorf("operation %s cancelled: %w", op.Name(), ctx.Err())
	case err := <-errCh:
		if err != nil {
			return errors.Errorf("executing %s: %w", op.Name(), err)
		}
		return nil
	}
}
