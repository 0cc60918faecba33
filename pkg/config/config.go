package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"github.com/macreleaser/macpack/pkg/env"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = ".macpack.yaml"

// Config represents the complete macpack configuration
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Bundle   BundleConfig   `yaml:"bundle"`
	DMG      DMGConfig      `yaml:"dmg,omitempty"`
	Sign     SignConfig     `yaml:"sign,omitempty"`
	Notarize NotarizeConfig `yaml:"notarize,omitempty"`
	Checksum ChecksumConfig `yaml:"checksum,omitempty"`
}

// ProjectConfig identifies the application being packaged.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name,omitempty"`
	Identifier  string `yaml:"identifier"`
	Version     string `yaml:"version,omitempty"`
}

// BundleConfig describes the .app bundle.
type BundleConfig struct {
	Binary         string `yaml:"binary"`
	Executable     string `yaml:"executable,omitempty"`
	Variant        string `yaml:"variant,omitempty"`
	OutputDir      string `yaml:"output_dir,omitempty"`
	Icon           string `yaml:"icon,omitempty"`
	HighResolution *bool  `yaml:"high_resolution,omitempty"`
}

// ExecutableName is the file name inside Contents/MacOS. It defaults to the
// base name of the prebuilt binary.
func (b BundleConfig) ExecutableName() string {
	if b.Executable != "" {
		return b.Executable
	}
	return filepath.Base(b.Binary)
}

// VariantName defaults to "v2".
func (b BundleConfig) VariantName() string {
	if b.Variant == "" {
		return "v2"
	}
	return b.Variant
}

// Dir is where the bundle and disk image are written; defaults to "dist".
func (b BundleConfig) Dir() string {
	if b.OutputDir == "" {
		return "dist"
	}
	return b.OutputDir
}

// HighResolutionCapable defaults to true.
func (b BundleConfig) HighResolutionCapable() bool {
	return b.HighResolution == nil || *b.HighResolution
}

// DMGConfig describes the disk image.
type DMGConfig struct {
	VolumeName string `yaml:"volume_name,omitempty"`
	Name       string `yaml:"name,omitempty"`
}

// Volume returns the mounted volume name, defaulting to the project name.
func (d DMGConfig) Volume(project string) string {
	if d.VolumeName != "" {
		return d.VolumeName
	}
	return project
}

// FileName returns the image file name, defaulting to <project>.dmg.
func (d DMGConfig) FileName(project string) string {
	if d.Name != "" {
		return d.Name
	}
	return project + ".dmg"
}

// SignConfig contains code signing configuration. An empty identity skips
// signing; "-" signs ad-hoc.
type SignConfig struct {
	Identity string `yaml:"identity,omitempty"`
}

// NotarizeConfig holds the Apple notary service credentials used to notarize
// the disk image. Leaving every field empty skips notarization. The password
// is an app-specific password; reference it with env(VAR) instead of writing
// it into the file.
type NotarizeConfig struct {
	AppleID  string `yaml:"apple_id,omitempty"`
	TeamID   string `yaml:"team_id,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Configured reports whether any notarization field is set.
func (n NotarizeConfig) Configured() bool {
	return n.AppleID != "" || n.TeamID != "" || n.Password != ""
}

// ChecksumConfig controls the SHA256 sidecar written next to the image.
type ChecksumConfig struct {
	Disable bool `yaml:"disable,omitempty"`
}

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	cleanPath, err := validateConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := readConfigFile(cleanPath)
	if err != nil {
		return nil, err
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, fmt.Errorf("failed to parse config: empty document")
	}

	if err := env.SubstituteEnvVarsNode(file.Docs[0].Body); err != nil {
		return nil, fmt.Errorf("environment variable substitution failed: %w", err)
	}

	var cfg Config
	if err := yaml.NodeToValue(file.Docs[0].Body, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Signing identities may be sensitive; keep the file private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfigPath resolves path and rejects relative paths that climb out
// of the working directory. Absolute paths elsewhere are allowed.
func validateConfigPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	cleanPath := filepath.Clean(absPath)

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	wd = filepath.Clean(wd)

	if cleanPath == wd || strings.HasPrefix(cleanPath, wd+string(filepath.Separator)) {
		rel, err := filepath.Rel(wd, cleanPath)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		if !filepath.IsLocal(rel) {
			return "", fmt.Errorf("invalid config path: path traversal detected")
		}
	}

	return cleanPath, nil
}

// maxConfigSize bounds how much of a config file is read.
const maxConfigSize = 1 << 20

func readConfigFile(cleanPath string) ([]byte, error) {
	// Stat follows symlinks so a linked config is validated by its target.
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: maximum size is 1MB")
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}
