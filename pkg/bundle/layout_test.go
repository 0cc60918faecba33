package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBinary(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "gui")
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testSpec(t *testing.T, dir string) Spec {
	return Spec{
		Layout: NewLayout(filepath.Join(dir, "dist"), "AHItool"),
		Binary: writeBinary(t, dir),
		Plist:  NewInfoPlist(testMetadata(), VariantV2),
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout("dist", "AHItool.app")
	if l.AppPath != filepath.Join("dist", "AHItool.app") {
		t.Errorf("AppPath = %q", l.AppPath)
	}
	if l.InfoPlistPath() != filepath.Join("dist", "AHItool.app", "Contents", "Info.plist") {
		t.Errorf("InfoPlistPath = %q", l.InfoPlistPath())
	}
	if l.ExecutablePath("ahitool") != filepath.Join("dist", "AHItool.app", "Contents", "MacOS", "ahitool") {
		t.Errorf("ExecutablePath = %q", l.ExecutablePath("ahitool"))
	}
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(t, dir)

	if err := Assemble(spec); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	exe := spec.Layout.ExecutablePath("ahitool")
	info, err := os.Stat(exe)
	if err != nil {
		t.Fatalf("executable not copied: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("executable mode = %v, want 0755", info.Mode().Perm())
	}

	p, err := ReadInfoPlist(spec.Layout.InfoPlistPath())
	if err != nil {
		t.Fatalf("ReadInfoPlist() error = %v", err)
	}
	if p.CFBundleVersion != "1.1" || p.CFBundleShortVersionString != "1.1" {
		t.Errorf("versions = %q/%q, want 1.1/1.1", p.CFBundleVersion, p.CFBundleShortVersionString)
	}
	if p.CFBundleExecutable != "ahitool" {
		t.Errorf("CFBundleExecutable = %q, want ahitool", p.CFBundleExecutable)
	}

	if _, err := os.Stat(spec.Layout.ResourcesDir()); !os.IsNotExist(err) {
		t.Errorf("Resources created without being requested (err = %v)", err)
	}
}

func TestAssembleRemovesStaleBundle(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(t, dir)

	stale := []string{
		filepath.Join(spec.Layout.MacOSDir(), "old-binary"),
		filepath.Join(spec.Layout.ResourcesDir(), "old.icns"),
		filepath.Join(spec.Layout.AppPath, "leftover.txt"),
	}
	for _, f := range stale {
		if err := os.MkdirAll(filepath.Dir(f), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(f, []byte("stale"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := Assemble(spec); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, f := range stale {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("stale file %s survived rebundling (err = %v)", f, err)
		}
	}

	var files []string
	err := filepath.WalkDir(spec.Layout.AppPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(spec.Layout.AppPath, path)
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join("Contents", "Info.plist"),
		filepath.Join("Contents", "MacOS", "ahitool"),
	}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("bundle files = %v, want %v", files, want)
	}
}

func TestAssembleWithResources(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(t, dir)
	spec.Resources = true

	if err := Assemble(spec); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if info, err := os.Stat(spec.Layout.ResourcesDir()); err != nil || !info.IsDir() {
		t.Errorf("Resources directory missing (err = %v)", err)
	}
}

func TestAssembleMissingBinary(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(t, dir)
	spec.Binary = filepath.Join(dir, "missing")

	err := Assemble(spec)
	if err == nil || !strings.Contains(err.Error(), "not available") {
		t.Errorf("error = %v, want 'not available'", err)
	}
	if _, err := os.Stat(spec.Layout.AppPath); !os.IsNotExist(err) {
		t.Error("bundle created despite missing executable")
	}
}

func TestAssembleInvalidExecutableName(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec(t, dir)
	spec.Plist.CFBundleExecutable = "../escape"

	err := Assemble(spec)
	if err == nil || !strings.Contains(err.Error(), "invalid executable name") {
		t.Errorf("error = %v, want 'invalid executable name'", err)
	}
}
