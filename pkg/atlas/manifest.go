package atlas

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/atlaskit/pkg/math"
)

// Manifest is the YAML description of an atlas written by atlastool, read by
// asset pipelines that want the rectangle layout without the sheet pixels.
type Manifest struct {
	Sheet  string         `yaml:"sheet"`
	Width  float32        `yaml:"width"`
	Height float32        `yaml:"height"`
	Rects  []ManifestRect `yaml:"rects"`
	Names  map[string]int `yaml:"names,omitempty"`
}

// ManifestRect is one rectangle in manifest form.
type ManifestRect struct {
	MinX float32 `yaml:"min_x"`
	MinY float32 `yaml:"min_y"`
	MaxX float32 `yaml:"max_x"`
	MaxY float32 `yaml:"max_y"`
}

// NewManifest captures an atlas's layout. The names map (name to sprite
// index) is optional and stored as-is.
func NewManifest(sheet string, a *Atlas, names map[string]int) Manifest {
	m := Manifest{
		Sheet:  sheet,
		Width:  a.Size.X,
		Height: a.Size.Y,
		Rects:  make([]ManifestRect, 0, a.Len()),
		Names:  names,
	}
	for _, r := range a.Rects() {
		m.Rects = append(m.Rects, ManifestRect{
			MinX: r.Min.X,
			MinY: r.Min.Y,
			MaxX: r.Max.X,
			MaxY: r.Max.Y,
		})
	}
	return m
}

// Atlas rebuilds the atlas described by the manifest, bound to the given
// texture handle. Name-to-index associations stay in the manifest; the
// rebuilt atlas has no texture-index map.
func (m Manifest) Atlas(texture TextureID) *Atlas {
	a := NewEmpty(texture, math.Vec2{X: m.Width, Y: m.Height})
	for _, r := range m.Rects {
		a.Add(Rect{
			Min: math.Vec2{X: r.MinX, Y: r.MinY},
			Max: math.Vec2{X: r.MaxX, Y: r.MaxY},
		})
	}
	return a
}

// Save writes the manifest to a YAML file, creating parent directories as
// needed.
func (m Manifest) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadManifest reads a manifest from a YAML file.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
