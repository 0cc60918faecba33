package icon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/macreleaser/macpack/pkg/command"
	"github.com/sirupsen/logrus"
)

// Options controls a conversion.
type Options struct {
	// KeepStaging leaves the temporary .iconset directory on disk after the
	// run, successful or not.
	KeepStaging bool
}

// Result describes a finished conversion.
type Result struct {
	Output     string   // path of the written .icns file
	Images     []string // staged images, in Entries order
	StagingDir string   // set only when Options.KeepStaging is true
}

// Convert stages every iconset entry from src with sips, then assembles dst
// with iconutil. The first failing tool aborts the run; iconutil is never
// invoked with a partially populated iconset.
func Convert(ctx context.Context, runner command.Runner, logger logrus.FieldLogger, src, dst string, opts Options) (*Result, error) {
	stagingDir, err := os.MkdirTemp("", "macpack-icon-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	if opts.KeepStaging {
		logger.Infof("Keeping staging directory %s", stagingDir)
	} else {
		defer func() {
			if removeErr := os.RemoveAll(stagingDir); removeErr != nil {
				logger.Warnf("Failed to remove staging directory %s: %v", stagingDir, removeErr)
			}
		}()
	}

	iconsetDir := filepath.Join(stagingDir, IconsetDirName)
	if err := os.Mkdir(iconsetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", IconsetDirName, err)
	}

	result := &Result{Output: dst}
	if opts.KeepStaging {
		result.StagingDir = stagingDir
	}

	for _, entry := range Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out := filepath.Join(iconsetDir, entry.Name)
		logger.Debugf("Resizing to %dx%d: %s", entry.Pixels, entry.Pixels, entry.Name)

		output, err := Resize(ctx, runner, src, out, entry.Pixels)
		logger.Debug(output)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		result.Images = append(result.Images, out)
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	output, err := Assemble(ctx, runner, iconsetDir, dst)
	logger.Debug(output)
	if err != nil {
		return nil, err
	}

	return result, nil
}
