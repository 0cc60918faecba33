// Package quarantine removes the download quarantine flag from files that
// are about to be redistributed.
package quarantine

import (
	"context"
	"fmt"

	"github.com/macreleaser/macpack/pkg/command"
)

// Attribute is the extended attribute Gatekeeper checks on first launch.
const Attribute = "com.apple.quarantine"

// BuildClearArgs returns the xattr arguments that recursively delete the
// quarantine attribute under path.
func BuildClearArgs(path string) []string {
	return []string{"-r", "-d", Attribute, path}
}

// Clear strips the quarantine attribute from path and everything below it.
func Clear(ctx context.Context, runner command.Runner, path string) (string, error) {
	output, err := runner.Run(ctx, "xattr", BuildClearArgs(path)...)
	if err != nil {
		return output, fmt.Errorf("failed to clear %s from %s: %w", Attribute, path, err)
	}
	return output, nil
}
