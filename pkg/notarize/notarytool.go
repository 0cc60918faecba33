// Package notarize submits disk images to Apple's notary service, staples
// the resulting ticket and checks the outcome with Gatekeeper.
package notarize

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

var (
	submissionIDRe = regexp.MustCompile(`id:\s*([0-9a-fA-F-]{36})`)
	statusRe       = regexp.MustCompile(`(?m)^\s*status:\s*(.+?)\s*$`)
)

// StatusAccepted is the notarytool status of a successful submission.
const StatusAccepted = "Accepted"

// BuildSubmitArgs returns the xcrun arguments that submit path and wait for
// the verdict.
func BuildSubmitArgs(path, appleID, teamID, password string) []string {
	return []string{
		"notarytool", "submit", path,
		"--apple-id", appleID,
		"--team-id", teamID,
		"--password", password,
		"--wait",
	}
}

// RunSubmit uploads path to the notary service and waits for processing.
// A submission that finishes with any status other than Accepted is an
// error even when notarytool itself exits 0.
func RunSubmit(ctx context.Context, runner command.Runner, path, appleID, teamID, password string) (string, error) {
	output, err := runner.Run(ctx, "xcrun", BuildSubmitArgs(path, appleID, teamID, password)...)
	if err != nil {
		if strings.Contains(output, "Unable to authenticate") {
			return output, fmt.Errorf("notarytool authentication failed; verify notarize.apple_id, notarize.team_id and notarize.password (an app-specific password from appleid.apple.com)")
		}
		if status := ParseStatus(output); status != "" && status != StatusAccepted {
			return output, rejected(output, status)
		}
		return output, fmt.Errorf("notarytool submit failed: %w", err)
	}

	if status := ParseStatus(output); status != "" && status != StatusAccepted {
		return output, rejected(output, status)
	}
	return output, nil
}

func rejected(output, status string) error {
	if id := ParseSubmissionID(output); id != "" {
		return fmt.Errorf("Apple rejected the submission with status %s; run: xcrun notarytool log %s", status, id) //nolint:staticcheck // proper noun
	}
	return fmt.Errorf("Apple rejected the submission with status %s", status) //nolint:staticcheck // proper noun
}

// ParseSubmissionID extracts the submission UUID from notarytool output.
// Returns an empty string if no UUID is found.
func ParseSubmissionID(output string) string {
	matches := submissionIDRe.FindStringSubmatch(output)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

// ParseStatus returns the last status notarytool reported, or "".
func ParseStatus(output string) string {
	matches := statusRe.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
