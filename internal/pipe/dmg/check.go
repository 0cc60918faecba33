package dmg

import (
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/validate"
)

// CheckPipe validates disk image configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating disk image configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	if ctx.SkipDMG {
		return pipe.Skip("disk image skipped (--skip-dmg)")
	}

	cfg := ctx.Config.DMG
	name := cfg.FileName(ctx.Config.Project.Name)
	if err := validate.FileName(name, "dmg.name"); err != nil {
		return err
	}
	if !strings.HasSuffix(name, ".dmg") {
		return fmt.Errorf("dmg.name %q must end in .dmg", name)
	}

	if err := validate.RequiredString(cfg.Volume(ctx.Config.Project.Name), "dmg.volume_name"); err != nil {
		return err
	}

	ctx.Logger.Debug("Disk image configuration validated successfully")
	return nil
}
