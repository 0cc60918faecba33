package context

import (
	"context"

	"github.com/macreleaser/macpack/pkg/command"
	"github.com/macreleaser/macpack/pkg/config"
	"github.com/sirupsen/logrus"
)

// Artifacts records the paths produced by execution pipes. Later pipes read
// what earlier ones wrote.
type Artifacts struct {
	AppPath      string // <output_dir>/<Name>.app
	IconPath     string // Contents/Resources/AppIcon.icns when an icon is bundled
	DMGPath      string // <output_dir>/<Name>.dmg
	ChecksumPath string // <DMGPath>.sha256
}

// IconJob describes a standalone `macpack icon` run.
type IconJob struct {
	Input  string
	Output string
}

// Context provides shared state for all pipes
type Context struct {
	StdCtx context.Context // Standard context for cancellation support
	Config *config.Config
	Logger *logrus.Logger
	Runner command.Runner

	ConfigPath   string // file the configuration was loaded from, if any
	Version      string // resolved bundle version, empty until resolved
	KeepStaging  bool
	SkipDMG      bool
	SkipNotarize bool
	Clean        bool

	Icon      IconJob
	Artifacts Artifacts
}

// NewContext creates a new context with the given standard context, config, and logger.
// If stdCtx is nil, context.Background() is used. Commands run through an
// ExecRunner unless Runner is replaced.
func NewContext(stdCtx context.Context, cfg *config.Config, logger *logrus.Logger) *Context {
	if stdCtx == nil {
		stdCtx = context.Background()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Context{
		StdCtx: stdCtx,
		Config: cfg,
		Logger: logger,
		Runner: command.ExecRunner{},
	}
}

// Done returns the done channel from the standard context for cancellation support
func (c *Context) Done() <-chan struct{} {
	return c.StdCtx.Done()
}

// Err returns the error from the standard context
func (c *Context) Err() error {
	return c.StdCtx.Err()
}
