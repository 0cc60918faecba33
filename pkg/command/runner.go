// Package command runs the external macOS tools that macpack delegates to.
package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// installHints maps tools to the message shown when they are missing from PATH.
var installHints = map[string]string{
	"sips":     "sips ships with macOS; the icon converter must run on a Mac",
	"iconutil": "install Xcode Command Line Tools with: xcode-select --install",
	"hdiutil":  "hdiutil ships with macOS; DMG packaging must run on a Mac",
	"xattr":    "xattr ships with macOS; quarantine clearing must run on a Mac",
	"codesign": "install Xcode Command Line Tools with: xcode-select --install",
	"security": "security ships with macOS; keychain lookups must run on a Mac",
	"ditto":    "ditto ships with macOS; DMG staging must run on a Mac",
	"xcrun":    "install Xcode Command Line Tools with: xcode-select --install",
	"spctl":    "spctl ships with macOS; Gatekeeper assessment must run on a Mac",
}

// Runner executes an external tool and returns its combined stdout/stderr.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs tools with os/exec.
type ExecRunner struct{}

// Run checks that name is on PATH, runs it to completion and returns its
// combined output. A non-zero exit is returned as an error that wraps
// *exec.ExitError.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		if hint, ok := installHints[name]; ok {
			return "", fmt.Errorf("%s not found: %s", name, hint)
		}
		return "", fmt.Errorf("%s not found in PATH", name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	output := string(out)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("%s interrupted: %w", name, ctxErr)
		}
		return output, fmt.Errorf("%s failed: %s: %w", name, strings.TrimSpace(output), err)
	}

	return output, nil
}

// Invocation is one recorded call to a Runner.
type Invocation struct {
	Name string
	Args []string
}

// String renders the invocation the way it would be typed in a shell.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}
