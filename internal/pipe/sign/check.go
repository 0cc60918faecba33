package sign

import (
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/env"
	"github.com/macreleaser/macpack/pkg/pipe"
)

// CheckPipe validates signing configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating signing configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	identity := ctx.Config.Sign.Identity
	if identity == "" {
		return pipe.Skip("signing not configured")
	}

	if err := env.CheckResolved(identity, "sign.identity"); err != nil {
		return err
	}

	ctx.Logger.Debug("Signing configuration validated successfully")
	return nil
}
