// Package pipeline executes registered pipes in sequence.
//
// Two pipelines exist:
//   - Icon: source image check, then conversion to .icns
//   - Bundle: validation pipes, then execution pipes that assemble the
//     .app, sign it, and image it into a .dmg
//
// Usage:
//
//	ctx := context.NewContext(context.Background(), cfg, logger)
//	if err := pipeline.RunAll(ctx); err != nil {
//	    // Handle error
//	}
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/logging"
	"github.com/macreleaser/macpack/pkg/pipe"
)

// RunIcon executes the icon conversion pipes.
func RunIcon(ctx *context.Context) error {
	return runPipes(ctx, IconPipes)
}

// RunValidation executes only the validation pipes.
// Used by the check command.
func RunValidation(ctx *context.Context) error {
	return runPipes(ctx, ValidationPipes)
}

// RunExecution executes only the execution pipes.
// Should be called after RunValidation succeeds.
func RunExecution(ctx *context.Context) error {
	return runPipes(ctx, ExecutionPipes)
}

// RunAll executes validation pipes first, then execution pipes.
// Used by the bundle command.
func RunAll(ctx *context.Context) error {
	if err := RunValidation(ctx); err != nil {
		return err
	}
	return RunExecution(ctx)
}

// runPipes executes a slice of pipes in sequence. Cancellation is checked
// between pipes so an interrupt never starts the next step.
func runPipes(ctx *context.Context, pipes []Piper) error {
	for _, p := range pipes {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", p.String(), err)
		}

		ctx.Logger.WithField(logging.ActionField, p.String()).Info()
		start := time.Now()

		if err := p.Run(ctx); err != nil {
			if isSkip(err) {
				ctx.Logger.Infof("Skipping: %v", err)
				continue
			}
			return fmt.Errorf("%s: %w", p.String(), err)
		}

		ctx.Logger.Debugf("Completed: %s (%s)", p.String(), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func isSkip(err error) bool {
	var s pipe.IsSkip
	return errors.As(err, &s) && s.IsSkip()
}

// Piper is re-exported for convenience within the pipeline package.
type Piper = pipe.Piper
