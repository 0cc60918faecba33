package bundle

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/bundle"
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/validate"
)

// CheckPipe validates bundle configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating bundle configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Bundle

	if err := validate.RequiredString(cfg.Binary, "bundle.binary"); err != nil {
		return err
	}

	if err := validate.FileName(cfg.ExecutableName(), "bundle.executable"); err != nil {
		return err
	}

	if err := validate.OneOf(cfg.VariantName(), bundle.Variants, "bundle.variant"); err != nil {
		return fmt.Errorf("%w (expected one of %v)", err, bundle.Variants)
	}

	if err := checkOutputDir(ctx); err != nil {
		return err
	}

	ctx.Logger.Debug("Bundle configuration validated successfully")
	return nil
}
