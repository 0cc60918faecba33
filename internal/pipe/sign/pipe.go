package sign

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/sign"
)

// Pipe code-signs the assembled .app bundle and verifies the signature.
type Pipe struct{}

func (Pipe) String() string { return "signing application" }

func (Pipe) Run(ctx *context.Context) error {
	identity := ctx.Config.Sign.Identity
	if identity == "" {
		return pipe.Skip("signing not configured")
	}

	if ctx.Artifacts.AppPath == "" {
		return fmt.Errorf("no .app found to sign; ensure the bundle step completed successfully")
	}

	if identity == sign.AdHocIdentity {
		ctx.Logger.Info("Signing ad-hoc; the bundle will not pass Gatekeeper on other machines")
	} else {
		ctx.Logger.Infof("Validating signing identity: %s", identity)
		if err := sign.CheckIdentityInKeychain(ctx.StdCtx, ctx.Runner, identity); err != nil {
			return fmt.Errorf("identity validation failed: %w", err)
		}
	}

	ctx.Logger.Infof("Signing %s", ctx.Artifacts.AppPath)
	output, err := sign.RunCodesign(ctx.StdCtx, ctx.Runner, identity, ctx.Artifacts.AppPath)
	ctx.Logger.Debug(output)
	if err != nil {
		return fmt.Errorf("signing failed: %w", err)
	}

	ctx.Logger.Info("Verifying signature")
	output, err = sign.RunVerify(ctx.StdCtx, ctx.Runner, ctx.Artifacts.AppPath)
	ctx.Logger.Debug(output)
	if err != nil {
		return err
	}

	ctx.Logger.Infof("Signed and verified: %s", ctx.Artifacts.AppPath)
	return nil
}
