// Package sign code-signs app bundles with codesign.
package sign

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// findIdentityLine matches `  1) <sha1> "Developer ID Application: Name (TEAM)"`.
var findIdentityLine = regexp.MustCompile(`^\s*\d+\)\s+[0-9A-Fa-f]+\s+"(.+)"`)

// ParseIdentityOutput extracts identity names from the output of
// `security find-identity -v -p codesigning`. Summary and malformed lines
// are ignored.
func ParseIdentityOutput(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		if m := findIdentityLine.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

// ValidateIdentity reports an error listing the installed identities when
// identity is not one of them.
func ValidateIdentity(identity string, installed []string) error {
	for _, name := range installed {
		if name == identity {
			return nil
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "signing identity %q not found in keychain", identity)
	if len(installed) == 0 {
		b.WriteString("; no valid signing identities are installed")
	} else {
		b.WriteString("\ninstalled identities:")
		for _, name := range installed {
			fmt.Fprintf(&b, "\n  - %s", name)
		}
	}
	b.WriteString("\nuse sign.identity: \"-\" for ad-hoc signing, or run: security find-identity -v -p codesigning")
	return fmt.Errorf("%s", b.String())
}

// CheckIdentityInKeychain validates identity against the keychain. The
// ad-hoc identity needs no certificate and always passes.
func CheckIdentityInKeychain(ctx context.Context, runner command.Runner, identity string) error {
	if identity == AdHocIdentity {
		return nil
	}

	output, err := runner.Run(ctx, "security", "find-identity", "-v", "-p", "codesigning")
	if err != nil {
		return fmt.Errorf("failed to list signing identities: %w", err)
	}
	return ValidateIdentity(identity, ParseIdentityOutput(output))
}
