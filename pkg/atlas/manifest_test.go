package atlas

import (
	"path/filepath"
	"testing"

	"github.com/Faultbox/atlaskit/pkg/math"
)

func TestManifestRoundTrip(t *testing.T) {
	a, err := FromGrid(1, math.Vec2{X: 32, Y: 32}, math.Vec2{X: 64, Y: 64})
	if err != nil {
		t.Fatalf("FromGrid() error: %v", err)
	}
	names := map[string]int{"hero_idle": 0, "hero_walk": 1}

	m := NewManifest("sheet.png", a, names)
	path := filepath.Join(t.TempDir(), "out", "atlas.yaml")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if loaded.Sheet != "sheet.png" {
		t.Errorf("Sheet = %q, want %q", loaded.Sheet, "sheet.png")
	}
	if loaded.Width != 64 || loaded.Height != 64 {
		t.Errorf("size = %vx%v, want 64x64", loaded.Width, loaded.Height)
	}
	if len(loaded.Rects) != 4 {
		t.Fatalf("len(Rects) = %d, want 4", len(loaded.Rects))
	}
	if loaded.Names["hero_walk"] != 1 {
		t.Errorf("Names[hero_walk] = %d, want 1", loaded.Names["hero_walk"])
	}

	rebuilt := loaded.Atlas(2)
	if rebuilt.Len() != a.Len() {
		t.Fatalf("rebuilt Len() = %d, want %d", rebuilt.Len(), a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if rebuilt.Rect(i) != a.Rect(i) {
			t.Errorf("rebuilt Rect(%d) = %v, want %v", i, rebuilt.Rect(i), a.Rect(i))
		}
	}
	if _, ok := rebuilt.TextureIndex(1); ok {
		t.Error("rebuilt atlas should have no texture-index map")
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := LoadManifest("/nonexistent/atlas.yaml"); err == nil {
		t.Error("expected error loading missing manifest, got nil")
	}
}
