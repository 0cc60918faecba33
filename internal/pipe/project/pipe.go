package project

import (
	"fmt"

	"github.com/macreleaser/macpack/pkg/bundle"
	"github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/git"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/macreleaser/macpack/pkg/validate"
)

// Pipe resolves the bundle version. A version already on the context (from
// --app-version) wins over project.version, which wins over the latest git
// tag.
type Pipe struct{}

func (Pipe) String() string { return "resolving version" }

func (Pipe) Run(ctx *context.Context) error {
	if bundle.Variant(ctx.Config.Bundle.VariantName()) == bundle.VariantV1 {
		if ctx.Version != "" {
			ctx.Logger.Warnf("Ignoring --app-version %s: v1 bundles carry no version keys", ctx.Version)
		}
		return pipe.Skip("v1 bundles carry no version keys")
	}

	source := "--app-version"
	if ctx.Version == "" && ctx.Config.Project.Version != "" {
		ctx.Version = ctx.Config.Project.Version
		source = "project.version"
	}
	if ctx.Version == "" {
		version, err := git.ResolveVersion(ctx.StdCtx, ctx.Runner)
		if err != nil {
			return fmt.Errorf("no version configured: set project.version, pass --app-version, or tag the repository: %w", err)
		}
		ctx.Version = version
		source = "git tag"
	}

	if err := validate.BundleVersion(ctx.Version, "version"); err != nil {
		ctx.Logger.Warnf("%v; Finder and Launch Services may not compare it correctly", err)
	}

	ctx.Logger.WithField("source", source).Infof("Version: %s", ctx.Version)
	return nil
}
