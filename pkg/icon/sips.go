package icon

import (
	"context"
	"fmt"
	"strconv"

	"github.com/macreleaser/macpack/pkg/command"
)

// BuildResizeArgs returns the sips arguments that resample src to a square of
// the given edge length and write it to dst.
func BuildResizeArgs(src, dst string, pixels int) []string {
	size := strconv.Itoa(pixels)
	return []string{"-z", size, size, src, "--out", dst}
}

// Resize runs sips for a single iconset entry. The returned output is the
// tool's chatter, which callers log at debug level only.
func Resize(ctx context.Context, runner command.Runner, src, dst string, pixels int) (string, error) {
	output, err := runner.Run(ctx, "sips", BuildResizeArgs(src, dst, pixels)...)
	if err != nil {
		return output, fmt.Errorf("resize to %dx%d failed: %w", pixels, pixels, err)
	}
	return output, nil
}
