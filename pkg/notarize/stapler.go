package notarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// RunStaple attaches the notarization ticket to path so Gatekeeper can
// verify it offline.
func RunStaple(ctx context.Context, runner command.Runner, path string) (string, error) {
	output, err := runner.Run(ctx, "xcrun", "stapler", "staple", path)
	if err != nil {
		if strings.Contains(output, "Could not find ticket") {
			return output, fmt.Errorf("stapling failed: no notarization ticket found for %s; ensure the submission was accepted", path)
		}
		return output, fmt.Errorf("stapler staple failed: %w", err)
	}
	return output, nil
}
