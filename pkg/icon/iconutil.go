package icon

import (
	"context"
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// BuildIconutilArgs returns the iconutil arguments that compress iconsetDir
// into the .icns file at outputPath.
func BuildIconutilArgs(iconsetDir, outputPath string) []string {
	return []string{"-c", "icns", "-o", outputPath, iconsetDir}
}

// Assemble runs iconutil over a fully populated iconset directory.
func Assemble(ctx context.Context, runner command.Runner, iconsetDir, outputPath string) (string, error) {
	output, err := runner.Run(ctx, "iconutil", BuildIconutilArgs(iconsetDir, outputPath)...)
	if err != nil {
		if strings.Contains(output, "Invalid Iconset") {
			return output, fmt.Errorf("iconutil rejected %s; every image must be a PNG at its mandated size: %w", iconsetDir, err)
		}
		return output, fmt.Errorf("icns assembly failed: %w", err)
	}
	return output, nil
}
