package icon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/macreleaser/macpack/pkg/command"
	"github.com/sirupsen/logrus"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func touchingRunner() *command.MockRunner {
	m := command.NewMockRunner()
	m.CreateOutputFiles()
	return m
}

func TestConvertRunsTenResizesBeforeAssembly(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "icon.png")
	dst := filepath.Join(dir, "AppIcon.icns")

	m := touchingRunner()
	result, err := Convert(context.Background(), m, newLogger(), src, dst, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	calls := m.Calls()
	if len(calls) != 11 {
		t.Fatalf("recorded %d calls, want 11", len(calls))
	}
	for i, entry := range Entries {
		c := calls[i]
		if c.Name != "sips" {
			t.Fatalf("calls[%d] = %q, want sips", i, c.Name)
		}
		size := strconv.Itoa(entry.Pixels)
		if c.Args[1] != size || c.Args[2] != size {
			t.Errorf("calls[%d] size = %sx%s, want %sx%s", i, c.Args[1], c.Args[2], size, size)
		}
		if c.Args[3] != src {
			t.Errorf("calls[%d] source = %q, want %q", i, c.Args[3], src)
		}
		if filepath.Base(c.Args[5]) != entry.Name {
			t.Errorf("calls[%d] output = %q, want %q", i, filepath.Base(c.Args[5]), entry.Name)
		}
		if filepath.Base(filepath.Dir(c.Args[5])) != IconsetDirName {
			t.Errorf("calls[%d] staged outside %s: %q", i, IconsetDirName, c.Args[5])
		}
	}

	last := calls[10]
	if last.Name != "iconutil" {
		t.Fatalf("last call = %q, want iconutil", last.Name)
	}
	if last.Args[3] != dst {
		t.Errorf("iconutil output = %q, want %q", last.Args[3], dst)
	}

	if len(result.Images) != 10 {
		t.Errorf("len(Images) = %d, want 10", len(result.Images))
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestConvertRemovesStaging(t *testing.T) {
	dir := t.TempDir()
	m := touchingRunner()

	result, err := Convert(context.Background(), m, newLogger(), filepath.Join(dir, "in.png"), filepath.Join(dir, "out.icns"), Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.StagingDir != "" {
		t.Errorf("StagingDir = %q, want empty", result.StagingDir)
	}

	staged := filepath.Dir(m.CallsTo("sips")[0].Args[5])
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staging directory %s still exists (err = %v)", staged, err)
	}
}

func TestConvertKeepStaging(t *testing.T) {
	dir := t.TempDir()
	m := touchingRunner()

	result, err := Convert(context.Background(), m, newLogger(), filepath.Join(dir, "in.png"), filepath.Join(dir, "out.icns"), Options{KeepStaging: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	defer func() { _ = os.RemoveAll(result.StagingDir) }()

	entries, err := os.ReadDir(filepath.Join(result.StagingDir, IconsetDirName))
	if err != nil {
		t.Fatalf("staging directory not kept: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("staged %d images, want 10", len(entries))
	}
}

func TestConvertResizeFailureAborts(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.icns")

	m := command.NewMockRunner()
	calls := 0
	m.OnRun = func(name string, args []string) error {
		calls++
		if calls == 4 {
			return errors.New("sips: unable to render")
		}
		return nil
	}

	_, err := Convert(context.Background(), m, newLogger(), filepath.Join(dir, "in.png"), dst, Options{})
	if err == nil {
		t.Fatal("expected error when a resize fails")
	}
	if !strings.Contains(err.Error(), Entries[3].Name) {
		t.Errorf("error = %v, want naming %s", err, Entries[3].Name)
	}
	if n := len(m.CallsTo("sips")); n != 4 {
		t.Errorf("sips called %d times, want 4", n)
	}
	if n := len(m.CallsTo("iconutil")); n != 0 {
		t.Errorf("iconutil called %d times after a failed resize", n)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("output file exists after failure (err = %v)", err)
	}
}

func TestConvertAssemblyFailure(t *testing.T) {
	dir := t.TempDir()
	m := command.NewMockRunner()
	m.Outputs["iconutil"] = "AppIcon.iconset:Invalid Iconset."
	m.Errors["iconutil"] = errors.New("exit status 1")

	_, err := Convert(context.Background(), m, newLogger(), filepath.Join(dir, "in.png"), filepath.Join(dir, "out.icns"), Options{})
	if err == nil {
		t.Fatal("expected error when iconutil fails")
	}
	if !strings.Contains(err.Error(), "mandated size") {
		t.Errorf("error = %v, want invalid iconset hint", err)
	}
}

func TestConvertCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := command.NewMockRunner()
	_, err := Convert(ctx, m, newLogger(), filepath.Join(dir, "in.png"), filepath.Join(dir, "out.icns"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(m.Calls()) != 0 {
		t.Errorf("recorded %d calls after cancellation, want 0", len(m.Calls()))
	}
}
