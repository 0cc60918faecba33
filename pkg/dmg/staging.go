// Package dmg stages an app bundle for imaging and creates the disk image
// with hdiutil.
package dmg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/macreleaser/macpack/pkg/command"
)

const (
	// ApplicationsLink is the name of the drag-to-install shortcut.
	ApplicationsLink = "Applications"
	// ApplicationsTarget is where the shortcut points.
	ApplicationsTarget = "/Applications"
)

// Staging is a scratch root holding exactly the app bundle and the
// Applications symlink.
type Staging struct {
	Root    string // directory passed to hdiutil -srcfolder
	AppPath string // the copied bundle inside Root
}

// BuildCopyArgs returns the ditto arguments that copy appPath to dst.
// ditto keeps extended attributes and resource forks, where codesign stores
// the signature of non-Mach-O files.
func BuildCopyArgs(appPath, dst string) []string {
	return []string{appPath, dst}
}

// Stage creates a scratch root under parent (os.TempDir when empty), copies
// appPath into it with ditto and adds the Applications symlink. The caller
// owns the returned Staging and must call Remove unless it wants to keep it.
func Stage(ctx context.Context, runner command.Runner, parent, appPath string) (*Staging, error) {
	info, err := os.Stat(appPath)
	if err != nil {
		return nil, fmt.Errorf("app bundle %s is not available: %w", appPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("app bundle %s is not a directory", appPath)
	}

	root, err := os.MkdirTemp(parent, "macpack-dmg-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create DMG staging root: %w", err)
	}
	s := &Staging{
		Root:    root,
		AppPath: filepath.Join(root, filepath.Base(appPath)),
	}

	if _, err := runner.Run(ctx, "ditto", BuildCopyArgs(appPath, s.AppPath)...); err != nil {
		_ = s.Remove()
		return nil, fmt.Errorf("failed to copy %s into staging root: %w", appPath, err)
	}

	if err := os.Symlink(ApplicationsTarget, filepath.Join(root, ApplicationsLink)); err != nil {
		_ = s.Remove()
		return nil, fmt.Errorf("failed to create %s symlink: %w", ApplicationsLink, err)
	}

	return s, nil
}

// Remove deletes the scratch root and everything in it.
func (s *Staging) Remove() error {
	return os.RemoveAll(s.Root)
}
