package pipeline

import (
	"github.com/macreleaser/macpack/internal/pipe/appicon"
	"github.com/macreleaser/macpack/internal/pipe/bundle"
	"github.com/macreleaser/macpack/internal/pipe/checksum"
	"github.com/macreleaser/macpack/internal/pipe/dmg"
	"github.com/macreleaser/macpack/internal/pipe/icon"
	"github.com/macreleaser/macpack/internal/pipe/notarize"
	"github.com/macreleaser/macpack/internal/pipe/project"
	"github.com/macreleaser/macpack/internal/pipe/sign"
)

// IconPipes converts a single image into an .icns file.
var IconPipes = []Piper{
	icon.CheckPipe{}, // Inspect the source image
	icon.Pipe{},      // Resize with sips, assemble with iconutil
}

// ValidationPipes contains all configuration checks, run by check and as
// the first stage of bundle.
var ValidationPipes = []Piper{
	project.CheckPipe{},  // Validate name and identifier
	bundle.CheckPipe{},   // Validate binary, executable, variant
	sign.CheckPipe{},     // Validate signing identity
	notarize.CheckPipe{}, // Validate notary credentials
	dmg.CheckPipe{},      // Validate disk image naming
}

// ExecutionPipes build the artifacts, run after validation succeeds.
var ExecutionPipes = []Piper{
	project.Pipe{},  // Resolve the bundle version
	bundle.Pipe{},   // Assemble <Name>.app and Info.plist
	appicon.Pipe{},  // Convert bundle.icon into Resources/AppIcon.icns
	sign.Pipe{},     // codesign and verify
	dmg.Pipe{},      // Stage, clear quarantine, hdiutil create
	notarize.Pipe{}, // notarytool submit, stapler staple, spctl
	checksum.Pipe{}, // <dmg>.sha256 of the stapled image
}
