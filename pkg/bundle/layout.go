// Package bundle assembles macOS .app bundles from a prebuilt executable.
//
// A bundle produced here has the minimal launchable layout:
//
//	<Name>.app/
//	  Contents/
//	    Info.plist
//	    MacOS/<executable>
//	    Resources/        (only when an icon is bundled)
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout resolves paths inside an app bundle.
type Layout struct {
	AppPath string
}

// NewLayout returns the layout of <outputDir>/<name>.app.
func NewLayout(outputDir, name string) Layout {
	name = strings.TrimSuffix(name, ".app")
	return Layout{AppPath: filepath.Join(outputDir, name+".app")}
}

func (l Layout) ContentsDir() string   { return filepath.Join(l.AppPath, "Contents") }
func (l Layout) MacOSDir() string      { return filepath.Join(l.ContentsDir(), "MacOS") }
func (l Layout) ResourcesDir() string  { return filepath.Join(l.ContentsDir(), "Resources") }
func (l Layout) InfoPlistPath() string { return filepath.Join(l.ContentsDir(), "Info.plist") }

// ExecutablePath is where the executable named exe lives in the bundle.
func (l Layout) ExecutablePath(exe string) string { return filepath.Join(l.MacOSDir(), exe) }

// Spec describes a bundle to assemble.
type Spec struct {
	Layout    Layout
	Binary    string // path of the prebuilt executable
	Plist     InfoPlist
	Resources bool // create Contents/Resources
}

// Assemble removes any existing bundle at spec.Layout.AppPath and builds a
// fresh one: the executable is copied in as Plist.CFBundleExecutable with
// mode 0755 and Info.plist is written next to MacOS/.
func Assemble(spec Spec) error {
	info, err := os.Stat(spec.Binary)
	if err != nil {
		return fmt.Errorf("executable %s is not available: %w", spec.Binary, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("executable %s is not a regular file", spec.Binary)
	}

	exe := spec.Plist.CFBundleExecutable
	if exe == "" || !filepath.IsLocal(exe) || filepath.Base(exe) != exe {
		return fmt.Errorf("invalid executable name %q", exe)
	}

	l := spec.Layout
	if err := os.RemoveAll(l.AppPath); err != nil {
		return fmt.Errorf("failed to remove existing bundle %s: %w", l.AppPath, err)
	}

	if err := os.MkdirAll(l.MacOSDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", l.MacOSDir(), err)
	}
	if spec.Resources {
		if err := os.MkdirAll(l.ResourcesDir(), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", l.ResourcesDir(), err)
		}
	}

	if err := CopyFile(spec.Binary, l.ExecutablePath(exe), 0755); err != nil {
		return fmt.Errorf("failed to copy executable into bundle: %w", err)
	}

	return WriteInfoPlist(l.InfoPlistPath(), spec.Plist)
}
