package icon

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/icon"
	"github.com/macreleaser/macpack/pkg/validate"
)

// CheckPipe validates the source image and output path of an icon job.
type CheckPipe struct{}

func (CheckPipe) String() string { return "checking source image" }

func (CheckPipe) Run(ctx *context.Context) error {
	job := ctx.Icon

	if err := validate.RequiredString(job.Input, "input image"); err != nil {
		return err
	}
	if err := validate.RequiredString(job.Output, "output path"); err != nil {
		return err
	}

	src, err := icon.Inspect(job.Input)
	if err != nil {
		if errors.Is(err, icon.ErrSourceMissing) {
			return fmt.Errorf("input file not found: %s", job.Input)
		}
		return err
	}

	if !strings.EqualFold(filepath.Ext(job.Output), ".icns") {
		ctx.Logger.Warnf("%s does not end in .icns", job.Output)
	}
	for _, w := range src.Warnings() {
		ctx.Logger.Warn(w)
	}

	ctx.Logger.WithField("format", src.Format).Infof("Source %s is %dx%d", src.Path, src.Width, src.Height)
	return nil
}
