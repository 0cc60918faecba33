package bundle

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// Variant selects which Info.plist keys are written.
type Variant string

const (
	// VariantV1 writes executable, identifier, name, package type and the
	// high resolution flag.
	VariantV1 Variant = "v1"
	// VariantV2 adds a display name and the bundle version keys, and clears
	// the quarantine attribute before imaging.
	VariantV2 Variant = "v2"
)

// Variants lists the accepted variant names.
var Variants = []string{string(VariantV1), string(VariantV2)}

// ClearsQuarantine reports whether the variant strips com.apple.quarantine
// from the staged bundle.
func (v Variant) ClearsQuarantine() bool { return v == VariantV2 }

// PackageTypeApplication is the CFBundlePackageType of a launchable app.
const PackageTypeApplication = "APPL"

// InfoPlist is the Contents/Info.plist descriptor of an app bundle.
type InfoPlist struct {
	CFBundleExecutable         string `plist:"CFBundleExecutable"`
	CFBundleIdentifier         string `plist:"CFBundleIdentifier"`
	CFBundleName               string `plist:"CFBundleName"`
	CFBundleDisplayName        string `plist:"CFBundleDisplayName,omitempty"`
	CFBundlePackageType        string `plist:"CFBundlePackageType"`
	CFBundleVersion            string `plist:"CFBundleVersion,omitempty"`
	CFBundleShortVersionString string `plist:"CFBundleShortVersionString,omitempty"`
	CFBundleIconFile           string `plist:"CFBundleIconFile,omitempty"`
	NSHighResolutionCapable    bool   `plist:"NSHighResolutionCapable"`
}

// Metadata is the project information an InfoPlist is built from.
type Metadata struct {
	Name           string
	DisplayName    string
	Identifier     string
	Executable     string
	Version        string
	IconFile       string
	HighResolution bool
}

// NewInfoPlist builds the descriptor for the given variant. Version and
// display name are dropped for v1. The single version string fills both
// CFBundleVersion and CFBundleShortVersionString.
func NewInfoPlist(meta Metadata, variant Variant) InfoPlist {
	p := InfoPlist{
		CFBundleExecutable:      meta.Executable,
		CFBundleIdentifier:      meta.Identifier,
		CFBundleName:            meta.Name,
		CFBundlePackageType:     PackageTypeApplication,
		CFBundleIconFile:        meta.IconFile,
		NSHighResolutionCapable: meta.HighResolution,
	}

	if variant == VariantV2 {
		p.CFBundleDisplayName = meta.DisplayName
		if p.CFBundleDisplayName == "" {
			p.CFBundleDisplayName = meta.Name
		}
		p.CFBundleVersion = meta.Version
		p.CFBundleShortVersionString = meta.Version
	}

	return p
}

// Encode renders the descriptor as an XML property list with the Apple 1.0
// DTD header.
func (p InfoPlist) Encode() ([]byte, error) {
	data, err := plist.MarshalIndent(p, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode Info.plist: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteInfoPlist encodes p to path.
func WriteInfoPlist(path string, p InfoPlist) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}
	return nil
}

// ReadInfoPlist decodes the property list at path. XML and binary plists
// are both accepted.
func ReadInfoPlist(path string) (*InfoPlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Info.plist: %w", err)
	}

	var p InfoPlist
	if _, err := plist.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode Info.plist: %w", err)
	}
	return &p, nil
}
