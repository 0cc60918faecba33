package dmg

import (
	"context"
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// Format is the hdiutil image format: zlib-compressed and read-only.
const Format = "UDZO"

// BuildCreateArgs returns the hdiutil arguments that image srcFolder into a
// compressed read-only DMG at outputPath, overwriting an existing file.
func BuildCreateArgs(srcFolder, outputPath, volumeName string) []string {
	return []string{
		"create",
		"-volname", volumeName,
		"-srcfolder", srcFolder,
		"-ov",
		"-format", Format,
		outputPath,
	}
}

// Create runs hdiutil create over the staged root folder.
func Create(ctx context.Context, runner command.Runner, srcFolder, outputPath, volumeName string) (string, error) {
	output, err := runner.Run(ctx, "hdiutil", BuildCreateArgs(srcFolder, outputPath, volumeName)...)
	if err != nil {
		if strings.Contains(output, "Resource busy") {
			return output, fmt.Errorf("a volume named %q is still mounted; eject it and retry: %w", volumeName, err)
		}
		return output, fmt.Errorf("failed to create DMG image: %w", err)
	}
	return output, nil
}
