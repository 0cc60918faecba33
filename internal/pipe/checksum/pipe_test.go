package checksum

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/macreleaser/macpack/pkg/config"
	macCtx "github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/pipe"
	"github.com/sirupsen/logrus"
)

func newChecksumContext(cfg *config.Config) *macCtx.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return macCtx.NewContext(context.Background(), cfg, logger)
}

func TestPipe(t *testing.T) {
	dmg := filepath.Join(t.TempDir(), "AHItool.dmg")
	if err := os.WriteFile(dmg, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := newChecksumContext(&config.Config{})
	ctx.Artifacts.DMGPath = dmg
	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ctx.Artifacts.ChecksumPath != dmg+".sha256" {
		t.Errorf("ChecksumPath = %q", ctx.Artifacts.ChecksumPath)
	}
	data, err := os.ReadFile(ctx.Artifacts.ChecksumPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9  AHItool.dmg\n"
	if string(data) != want {
		t.Errorf("sidecar = %q, want %q", data, want)
	}
}

func TestPipeSkips(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		dmg  string
	}{
		{name: "disabled", cfg: &config.Config{Checksum: config.ChecksumConfig{Disable: true}}, dmg: "AHItool.dmg"},
		{name: "no dmg", cfg: &config.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newChecksumContext(tt.cfg)
			ctx.Artifacts.DMGPath = tt.dmg

			err := Pipe{}.Run(ctx)
			var s pipe.IsSkip
			if !errors.As(err, &s) {
				t.Errorf("Run() error = %v, want skip", err)
			}
		})
	}
}
