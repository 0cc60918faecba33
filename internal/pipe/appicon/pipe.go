// Package appicon converts the configured bundle icon into
// Contents/Resources/AppIcon.icns.
package appicon

import (
	"errors"
	"fmt"
	"path/filepath"

	bundlepipe "github.com/macreleaser/macpack/internal/pipe/bundle"
	"github.com/macreleaser/macpack/pkg/bundle"
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/icon"
	"github.com/macreleaser/macpack/pkg/pipe"
)

// Pipe bundles the application icon.
type Pipe struct{}

func (Pipe) String() string { return "bundling app icon" }

func (Pipe) Run(ctx *context.Context) error {
	src := ctx.Config.Bundle.Icon
	if src == "" {
		return pipe.Skip("no bundle.icon configured")
	}
	if ctx.Artifacts.AppPath == "" {
		return fmt.Errorf("no .app found to add an icon to; ensure the bundle step completed successfully")
	}

	source, err := icon.Inspect(src)
	if err != nil {
		if errors.Is(err, icon.ErrSourceMissing) {
			return fmt.Errorf("bundle.icon not found: %s", src)
		}
		return err
	}
	for _, w := range source.Warnings() {
		ctx.Logger.Warn(w)
	}

	layout := bundle.Layout{AppPath: ctx.Artifacts.AppPath}
	dst := filepath.Join(layout.ResourcesDir(), bundlepipe.IconFile+".icns")

	result, err := icon.Convert(ctx.StdCtx, ctx.Runner, ctx.Logger, src, dst, icon.Options{
		KeepStaging: ctx.KeepStaging,
	})
	if err != nil {
		return fmt.Errorf("icon conversion failed: %w", err)
	}

	ctx.Artifacts.IconPath = result.Output
	ctx.Logger.Infof("Bundled icon %s", result.Output)
	return nil
}
