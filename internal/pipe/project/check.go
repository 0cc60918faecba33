package project

import (
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/env"
	"github.com/macreleaser/macpack/pkg/validate"
)

// CheckPipe validates project configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating project configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Project

	if err := validate.FileName(cfg.Name, "project.name"); err != nil {
		return err
	}

	if err := env.CheckResolved(cfg.Identifier, "project.identifier"); err != nil {
		return err
	}
	if err := validate.BundleIdentifier(cfg.Identifier, "project.identifier"); err != nil {
		return err
	}

	if cfg.Version != "" {
		if err := env.CheckResolved(cfg.Version, "project.version"); err != nil {
			return err
		}
	}

	ctx.Logger.Debug("Project configuration validated successfully")
	return nil
}
