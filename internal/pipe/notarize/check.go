package notarize

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/env"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/sign"
	"github.com/macreleaser/macpack/pkg/validate"
)

// CheckPipe validates notarization configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating notarization configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	if ctx.SkipNotarize {
		return pipe.Skip("notarization skipped (--skip-notarize)")
	}

	cfg := ctx.Config.Notarize
	if !cfg.Configured() {
		return pipe.Skip("notarization not configured")
	}

	fields := []struct {
		value string
		name  string
	}{
		{cfg.AppleID, "notarize.apple_id"},
		{cfg.TeamID, "notarize.team_id"},
		{cfg.Password, "notarize.password"},
	}
	for _, f := range fields {
		if err := env.CheckResolved(f.value, f.name); err != nil {
			return err
		}
	}
	for _, f := range fields {
		if err := validate.RequiredString(f.value, f.name); err != nil {
			return err
		}
	}

	identity := ctx.Config.Sign.Identity
	if identity == "" || identity == sign.AdHocIdentity {
		return fmt.Errorf("notarization requires a Developer ID identity in sign.identity (got %q)", identity)
	}

	ctx.Logger.Debug("Notarization configuration validated successfully")
	return nil
}
