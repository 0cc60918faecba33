package icon

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrSourceMissing is returned by Inspect when the source path does not exist.
var ErrSourceMissing = errors.New("source image does not exist")

// Source describes a source image without decoding its pixels.
type Source struct {
	Path   string
	Format string // "png", "jpeg", "tiff", "bmp" or "webp"
	Width  int
	Height int
}

// Square reports whether the image has equal sides.
func (s Source) Square() bool { return s.Width == s.Height }

// Warnings lists problems that do not stop conversion but degrade the
// resulting icon.
func (s Source) Warnings() []string {
	var warnings []string
	if s.Format != "png" {
		warnings = append(warnings, fmt.Sprintf("%s is %s, not png; sips will convert it", s.Path, s.Format))
	}
	if !s.Square() {
		warnings = append(warnings, fmt.Sprintf("%s is %dx%d; icons will be stretched to squares", s.Path, s.Width, s.Height))
	}
	if s.Width < MaxPixels || s.Height < MaxPixels {
		warnings = append(warnings, fmt.Sprintf("%s is smaller than %dx%d; large icon sizes will be upscaled", s.Path, MaxPixels, MaxPixels))
	}
	return warnings
}

// Inspect reads the image header at path. It distinguishes a missing file
// (ErrSourceMissing), a path that is not a regular file, and a file whose
// contents are not a recognised image.
func Inspect(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return Source{}, fmt.Errorf("failed to access source image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return Source{}, fmt.Errorf("source image %s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to open source image: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s is not a recognised image: %w", path, err)
	}

	return Source{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
