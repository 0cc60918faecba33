package notarize

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// BuildAssessArgs returns the spctl arguments that assess path. Disk images
// are assessed as opened documents by their own signature; bundles as
// executables.
func BuildAssessArgs(path string) []string {
	if strings.EqualFold(filepath.Ext(path), ".dmg") {
		return []string{"--assess", "--type", "open", "--context", "context:primary-signature", "--verbose", path}
	}
	return []string{"--assess", "--type", "execute", "--verbose", path}
}

// RunAssess checks that Gatekeeper accepts path.
func RunAssess(ctx context.Context, runner command.Runner, path string) (string, error) {
	output, err := runner.Run(ctx, "spctl", BuildAssessArgs(path)...)
	if err != nil {
		if strings.Contains(output, "rejected") {
			return output, fmt.Errorf("Gatekeeper rejected %s; it may not be properly signed or notarized", path) //nolint:staticcheck // proper noun
		}
		return output, fmt.Errorf("spctl assess failed: %w", err)
	}
	return output, nil
}
