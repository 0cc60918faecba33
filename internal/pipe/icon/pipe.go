package icon

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/icon"
)

// Pipe renders every iconset size from the source image and assembles the
// .icns file.
type Pipe struct{}

func (Pipe) String() string { return "converting icon" }

func (Pipe) Run(ctx *context.Context) error {
	job := ctx.Icon

	ctx.Logger.Infof("Rendering %d iconset images", len(icon.Entries))
	result, err := icon.Convert(ctx.StdCtx, ctx.Runner, ctx.Logger, job.Input, job.Output, icon.Options{
		KeepStaging: ctx.KeepStaging,
	})
	if err != nil {
		return fmt.Errorf("icon conversion failed: %w", err)
	}

	ctx.Artifacts.IconPath = result.Output
	ctx.Logger.Infof("Wrote %s", result.Output)
	return nil
}
