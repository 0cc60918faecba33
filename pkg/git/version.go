// Package git derives bundle versions from repository tags.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/macreleaser/macpack/pkg/command"
)

// LatestTag returns the most recent tag reachable from HEAD.
func LatestTag(ctx context.Context, runner command.Runner) (string, error) {
	output, err := runner.Run(ctx, "git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		if strings.Contains(output, "No names found") || strings.Contains(output, "No tags") {
			return "", fmt.Errorf("no git tags found; set project.version or tag a release with `git tag v1.0.0`")
		}
		if strings.Contains(output, "not a git repository") {
			return "", fmt.Errorf("not a git repository; set project.version or pass --app-version")
		}
		return "", fmt.Errorf("failed to resolve version from git tags: %w", err)
	}

	tag := strings.TrimSpace(output)
	if tag == "" {
		return "", fmt.Errorf("no git tags found; set project.version or tag a release with `git tag v1.0.0`")
	}
	return tag, nil
}

// BundleVersion converts a tag such as "v1.2.0" into the dotted form
// CFBundleVersion expects ("1.2.0").
func BundleVersion(tag string) string {
	tag = strings.TrimSpace(tag)
	if len(tag) > 1 && (tag[0] == 'v' || tag[0] == 'V') && tag[1] >= '0' && tag[1] <= '9' {
		return tag[1:]
	}
	return tag
}

// ResolveVersion returns the bundle version derived from the latest tag.
func ResolveVersion(ctx context.Context, runner command.Runner) (string, error) {
	tag, err := LatestTag(ctx, runner)
	if err != nil {
		return "", err
	}
	return BundleVersion(tag), nil
}
