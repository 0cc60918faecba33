package icon

import (
	"fmt"
	"testing"
)

func TestEntries(t *testing.T) {
	if len(Entries) != 10 {
		t.Fatalf("len(Entries) = %d, want 10", len(Entries))
	}

	seen := make(map[string]bool)
	for _, e := range Entries {
		if seen[e.Name] {
			t.Errorf("duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true

		if e.Pixels > MaxPixels {
			t.Errorf("%s: pixels %d exceed MaxPixels %d", e.Name, e.Pixels, MaxPixels)
		}
	}
}

func TestEntriesPairScales(t *testing.T) {
	// Each point size appears at 1x followed by 2x.
	for i := 0; i < len(Entries); i += 2 {
		base, retina := Entries[i], Entries[i+1]
		points := base.Pixels

		wantBase := fmt.Sprintf("icon_%dx%d.png", points, points)
		wantRetina := fmt.Sprintf("icon_%dx%d@2x.png", points, points)

		if base.Name != wantBase {
			t.Errorf("Entries[%d].Name = %q, want %q", i, base.Name, wantBase)
		}
		if retina.Name != wantRetina {
			t.Errorf("Entries[%d].Name = %q, want %q", i+1, retina.Name, wantRetina)
		}
		if retina.Pixels != 2*points {
			t.Errorf("%s: pixels = %d, want %d", retina.Name, retina.Pixels, 2*points)
		}
	}
}

func TestBuildResizeArgs(t *testing.T) {
	got := BuildResizeArgs("/src/icon.png", "/tmp/AppIcon.iconset/icon_32x32.png", 32)
	want := []string{"-z", "32", "32", "/src/icon.png", "--out", "/tmp/AppIcon.iconset/icon_32x32.png"}

	if len(got) != len(want) {
		t.Fatalf("BuildResizeArgs() returned %d args, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("BuildResizeArgs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildIconutilArgs(t *testing.T) {
	got := BuildIconutilArgs("/tmp/x/AppIcon.iconset", "out/AppIcon.icns")
	want := []string{"-c", "icns", "-o", "out/AppIcon.icns", "/tmp/x/AppIcon.iconset"}

	if len(got) != len(want) {
		t.Fatalf("BuildIconutilArgs() returned %d args, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("BuildIconutilArgs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
