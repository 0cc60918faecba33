// Package checksum writes the SHA256 sidecar for the disk image.
package checksum

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/checksum"
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/pipe"
)

// Pipe writes <dmg>.sha256 next to the disk image.
type Pipe struct{}

func (Pipe) String() string { return "writing checksum" }

func (Pipe) Run(ctx *context.Context) error {
	if ctx.Config.Checksum.Disable {
		return pipe.Skip("checksum disabled")
	}
	if ctx.Artifacts.DMGPath == "" {
		return pipe.Skip("no disk image to checksum")
	}

	sidecar, sum, err := checksum.WriteSidecar(ctx.Artifacts.DMGPath)
	if err != nil {
		return fmt.Errorf("checksum of %s failed: %w", ctx.Artifacts.DMGPath, err)
	}

	ctx.Artifacts.ChecksumPath = sidecar
	ctx.Logger.WithField("sha256", sum).Infof("Wrote %s", sidecar)
	return nil
}
