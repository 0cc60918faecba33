package sign

import (
	"context"
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// AdHocIdentity signs without a certificate. Such bundles launch on the
// build machine and on Apple Silicon, but do not pass Gatekeeper elsewhere.
const AdHocIdentity = "-"

// BuildCodesignArgs returns the codesign arguments that deep-sign appPath.
func BuildCodesignArgs(identity, appPath string) []string {
	return []string{"--force", "--deep", "--sign", identity, appPath}
}

// RunCodesign signs the app bundle at appPath with identity.
func RunCodesign(ctx context.Context, runner command.Runner, identity, appPath string) (string, error) {
	output, err := runner.Run(ctx, "codesign", BuildCodesignArgs(identity, appPath)...)
	if err != nil {
		if strings.Contains(output, "resource fork, Finder information, or similar detritus") {
			return output, fmt.Errorf("codesign rejected extended attributes; remove them with: xattr -cr %s", appPath)
		}
		return output, fmt.Errorf("codesign failed: %w", err)
	}
	return output, nil
}

// RunVerify checks the signature of appPath with --deep --strict.
func RunVerify(ctx context.Context, runner command.Runner, appPath string) (string, error) {
	output, err := runner.Run(ctx, "codesign", "--verify", "--deep", "--strict", appPath)
	if err != nil {
		return output, fmt.Errorf("signature verification failed for %s: %w", appPath, err)
	}
	return output, nil
}

// BuildImageSignArgs returns the codesign arguments that sign a disk image
// with a secure timestamp, as the notary service requires.
func BuildImageSignArgs(identity, imagePath string) []string {
	return []string{"--force", "--timestamp", "--sign", identity, imagePath}
}

// RunSignImage signs the disk image at imagePath with identity.
func RunSignImage(ctx context.Context, runner command.Runner, identity, imagePath string) (string, error) {
	output, err := runner.Run(ctx, "codesign", BuildImageSignArgs(identity, imagePath)...)
	if err != nil {
		return output, fmt.Errorf("failed to sign disk image %s: %w", imagePath, err)
	}
	return output, nil
}
