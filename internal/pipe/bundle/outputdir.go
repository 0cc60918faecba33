package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/macreleaser/macpack/pkg/context"
)

// checkOutputDir rejects an output directory that --clean could not remove
// without taking the project with it: one that is or contains the working
// directory, the configuration file or the prebuilt binary.
func checkOutputDir(ctx *context.Context) error {
	dir := ctx.Config.Bundle.Dir()
	if !filepath.IsAbs(dir) && !filepath.IsLocal(dir) {
		return fmt.Errorf("bundle.output_dir contains a path traversal: %q", dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid bundle.output_dir: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	protected := []struct {
		path string
		what string
	}{
		{wd, "the working directory"},
		{ctx.ConfigPath, "the configuration file"},
		{ctx.Config.Bundle.Binary, "bundle.binary"},
	}
	for _, p := range protected {
		if p.path == "" {
			continue
		}
		abs, err := filepath.Abs(p.path)
		if err != nil {
			return fmt.Errorf("invalid path %s: %w", p.path, err)
		}
		if within(absDir, abs) {
			return fmt.Errorf("bundle.output_dir %q contains %s (%s); choose a dedicated directory such as dist", dir, p.what, abs)
		}
	}
	return nil
}

// within reports whether path is parent or lies below it.
func within(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
