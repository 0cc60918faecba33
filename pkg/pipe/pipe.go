package pipe

import (
	"github.com/macreleaser/macpack/pkg/context"
)

// Piper defines the interface for all pipeline steps.
// Each pipe is one named phase of icon conversion or bundling, executed
// sequentially by the pipeline.
type Piper interface {
	// String returns the pipe name shown to users as the pipe executes.
	String() string

	// Run executes the pipe against the shared context. Return pipe.Skip()
	// to indicate the pipe intentionally did nothing.
	Run(ctx *context.Context) error
}

// IsSkip indicates that a pipe was intentionally skipped.
// This is not an error condition but a normal part of pipeline execution.
type IsSkip interface {
	IsSkip() bool
}

// SkipError represents an intentional skip of a pipeline step.
// Unlike regular errors, skips do not fail the pipeline but instead
// cause the pipeline to continue with the next pipe.
type SkipError struct {
	Reason string
}

func (e SkipError) Error() string { return e.Reason }
func (e SkipError) IsSkip() bool  { return true }

// Skip creates a new skip error with the given reason.
// Use this when a pipe determines it should not run (e.g. no icon configured).
func Skip(reason string) SkipError {
	return SkipError{Reason: reason}
}
