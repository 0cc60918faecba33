package notarize

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/notarize"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/sign"
)

// Pipe signs the disk image, submits it to the notary service, staples the
// ticket and verifies the result with Gatekeeper.
type Pipe struct{}

func (Pipe) String() string { return "notarizing disk image" }

func (Pipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Notarize
	if ctx.SkipNotarize || !cfg.Configured() {
		return pipe.Skip("notarization not configured")
	}
	image := ctx.Artifacts.DMGPath
	if image == "" {
		return pipe.Skip("no disk image to notarize")
	}

	ctx.Logger.Infof("Signing %s", image)
	output, err := sign.RunSignImage(ctx.StdCtx, ctx.Runner, ctx.Config.Sign.Identity, image)
	ctx.Logger.Debug(output)
	if err != nil {
		return err
	}

	ctx.Logger.Info("Submitting to Apple notary service (this may take several minutes)")
	output, err = notarize.RunSubmit(ctx.StdCtx, ctx.Runner, image, cfg.AppleID, cfg.TeamID, cfg.Password)
	ctx.Logger.Debug(output)
	if err != nil {
		return fmt.Errorf("notarization failed: %w", err)
	}

	ctx.Logger.Info("Stapling notarization ticket")
	output, err = notarize.RunStaple(ctx.StdCtx, ctx.Runner, image)
	ctx.Logger.Debug(output)
	if err != nil {
		return err
	}

	ctx.Logger.Info("Verifying Gatekeeper assessment")
	output, err = notarize.RunAssess(ctx.StdCtx, ctx.Runner, image)
	ctx.Logger.Debug(output)
	if err != nil {
		return fmt.Errorf("Gatekeeper assessment failed: %w", err) //nolint:staticcheck // proper noun
	}

	ctx.Logger.Infof("Notarized %s", image)
	return nil
}
