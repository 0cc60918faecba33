package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/macreleaser/macpack/pkg/config"
	"github.com/macreleaser/macpack/pkg/logging"
	"github.com/sirupsen/logrus"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0ms"},
		{"milliseconds", 523 * time.Millisecond, "523ms"},
		{"sub-second", 999 * time.Millisecond, "999ms"},
		{"one second", time.Second, "1s"},
		{"seconds", 45 * time.Second, "45s"},
		{"one minute", time.Minute, "1m"},
		{"minutes and seconds", time.Minute + 32*time.Second, "1m32s"},
		{"exact minutes", 2 * time.Minute, "2m"},
		{"large", 5*time.Minute + 12*time.Second, "5m12s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.d)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	normal := SetupLogger(false)
	if normal.GetLevel() != logrus.InfoLevel {
		t.Errorf("normal level = %v, want info", normal.GetLevel())
	}
	if _, ok := normal.Formatter.(*logging.BulletFormatter); !ok {
		t.Errorf("normal formatter = %T, want *logging.BulletFormatter", normal.Formatter)
	}

	debug := SetupLogger(true)
	if debug.GetLevel() != logrus.DebugLevel {
		t.Errorf("debug level = %v, want debug", debug.GetLevel())
	}
	if _, ok := debug.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("debug formatter = %T, want *logrus.TextFormatter", debug.Formatter)
	}
}

func TestIconArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"none", nil, true},
		{"one", []string{"icon.png"}, true},
		{"two", []string{"icon.png", "AppIcon.icns"}, false},
		{"three", []string{"icon.png", "AppIcon.icns", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := iconArgs(iconCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("iconArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), iconUsage) {
				t.Errorf("error %q does not carry the usage line", err)
			}
		})
	}
}

func TestWriteExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)

	created, err := writeExampleConfig(path)
	if err != nil || !created {
		t.Fatalf("writeExampleConfig() = %v, %v", created, err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	if cfg.Project.Name != "AHItool" {
		t.Errorf("project.name = %q", cfg.Project.Name)
	}

	if err := os.WriteFile(path, []byte("custom"), 0600); err != nil {
		t.Fatal(err)
	}
	created, err = writeExampleConfig(path)
	if err != nil || created {
		t.Fatalf("second writeExampleConfig() = %v, %v, want no overwrite", created, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "custom" {
		t.Errorf("existing config overwritten: %q", data)
	}
}
