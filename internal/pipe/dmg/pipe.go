package dmg

import (
	"fmt"
	"path/filepath"

	"github.com/macreleaser/macpack/pkg/bundle"
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/dmg"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/quarantine"
)

// Pipe stages the bundle next to an Applications symlink and images the
// staging root with hdiutil.
type Pipe struct{}

func (Pipe) String() string { return "creating disk image" }

func (Pipe) Run(ctx *context.Context) error {
	if ctx.SkipDMG {
		return pipe.Skip("disk image skipped (--skip-dmg)")
	}
	if ctx.Artifacts.AppPath == "" {
		return fmt.Errorf("no .app found to image; ensure the bundle step completed successfully")
	}

	cfg := ctx.Config
	output := filepath.Join(cfg.Bundle.Dir(), cfg.DMG.FileName(cfg.Project.Name))
	volume := cfg.DMG.Volume(cfg.Project.Name)

	staging, err := dmg.Stage(ctx.StdCtx, ctx.Runner, "", ctx.Artifacts.AppPath)
	if err != nil {
		return err
	}
	if ctx.KeepStaging {
		ctx.Logger.Infof("Keeping staging root %s", staging.Root)
	} else {
		defer func() {
			if err := staging.Remove(); err != nil {
				ctx.Logger.Warnf("Failed to remove staging root %s: %v", staging.Root, err)
			}
		}()
	}

	if bundle.Variant(cfg.Bundle.VariantName()).ClearsQuarantine() {
		ctx.Logger.Infof("Clearing %s", quarantine.Attribute)
		out, err := quarantine.Clear(ctx.StdCtx, ctx.Runner, staging.AppPath)
		ctx.Logger.Debug(out)
		if err != nil {
			return err
		}
	}

	ctx.Logger.WithField("volume", volume).Infof("Imaging %s", staging.Root)
	out, err := dmg.Create(ctx.StdCtx, ctx.Runner, staging.Root, output, volume)
	ctx.Logger.Debug(out)
	if err != nil {
		return err
	}

	ctx.Artifacts.DMGPath = output
	ctx.Logger.Infof("Built %s", output)
	return nil
}
