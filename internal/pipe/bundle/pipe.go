package bundle

import (
	"fmt"
	"os"

	"github.com/macreleaser/macpack/pkg/bundle"
	"github.com/macreleaser/macpack/pkg/context"
)

// IconFile is the CFBundleIconFile value and the base name of the bundled
// icon in Contents/Resources.
const IconFile = "AppIcon"

// Pipe assembles the .app bundle from the prebuilt executable.
type Pipe struct{}

func (Pipe) String() string { return "assembling app bundle" }

func (Pipe) Run(ctx *context.Context) error {
	cfg := ctx.Config
	dir := cfg.Bundle.Dir()

	if ctx.Clean {
		if err := checkOutputDir(ctx); err != nil {
			return fmt.Errorf("refusing to clean: %w", err)
		}
		ctx.Logger.Infof("Removing %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", dir, err)
		}
	}

	meta := bundle.Metadata{
		Name:           cfg.Project.Name,
		DisplayName:    cfg.Project.DisplayName,
		Identifier:     cfg.Project.Identifier,
		Executable:     cfg.Bundle.ExecutableName(),
		Version:        ctx.Version,
		HighResolution: cfg.Bundle.HighResolutionCapable(),
	}
	if cfg.Bundle.Icon != "" {
		meta.IconFile = IconFile
	}

	layout := bundle.NewLayout(dir, cfg.Project.Name)
	spec := bundle.Spec{
		Layout:    layout,
		Binary:    cfg.Bundle.Binary,
		Plist:     bundle.NewInfoPlist(meta, bundle.Variant(cfg.Bundle.VariantName())),
		Resources: cfg.Bundle.Icon != "",
	}

	ctx.Logger.WithField("variant", cfg.Bundle.VariantName()).Infof("Copying %s into %s", cfg.Bundle.Binary, layout.AppPath)
	if err := bundle.Assemble(spec); err != nil {
		return err
	}

	ctx.Artifacts.AppPath = layout.AppPath
	ctx.Logger.Infof("Built %s", layout.AppPath)
	return nil
}
