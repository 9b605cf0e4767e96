// Package atlas provides texture-atlas data structures for sprite rendering:
// grid slicing of fixed-size sprite sheets, shelf packing of independently
// identified images into one sheet, and stable sprite-index lookup.
package atlas

import (
	"errors"

	"github.com/Faultbox/atlaskit/pkg/math"
)

// TextureID identifies a source texture. IDs are minted by whatever asset
// system owns the texture data; the atlas only stores and compares them.
type TextureID uint64

// Sentinel errors reported by atlas construction.
var (
	ErrInvalidTileSize = errors.New("atlas: tile size must be positive")
	ErrInvalidPadding  = errors.New("atlas: padding leaves no positive cell stride")
	ErrAtlasFull       = errors.New("atlas: images do not fit in the sheet")
	ErrImageTooLarge   = errors.New("atlas: image larger than the sheet")
	ErrDuplicateID     = errors.New("atlas: texture id already added")
)

// IndexLookup is the read side of a texture-to-sprite-index mapping. An Atlas
// built by a Builder satisfies it; grid-built atlases always report a miss.
type IndexLookup interface {
	TextureIndex(id TextureID) (int, bool)
}

// Atlas maps sub-rectangles of one backing texture to stable sprite indices.
// Rectangles are only ever appended, never removed or reordered, so a sprite
// index stays valid for the lifetime of the atlas. Mutate only during asset
// construction; afterwards the atlas is safe for concurrent readers.
type Atlas struct {
	// Texture is the handle of the backing sheet.
	Texture TextureID
	// Size is the sheet's overall pixel dimensions.
	Size math.Vec2

	rects   []Rect
	handles map[TextureID]int
}

// NewEmpty creates an atlas with no rectangles. Use Add to populate it.
func NewEmpty(texture TextureID, dimensions math.Vec2) *Atlas {
	return &Atlas{
		Texture: texture,
		Size:    dimensions,
	}
}

// FromGrid slices a texture into a grid of tileSize cells, one rectangle per
// cell in row-major order (row 0 left to right, then row 1, and so on).
func FromGrid(texture TextureID, tileSize, textureDimensions math.Vec2) (*Atlas, error) {
	return FromGridWithPadding(texture, tileSize, textureDimensions, PaddingSpec{})
}

// FromGridWithPadding slices a texture into a grid of tileSize cells, each
// surrounded by the given margins. The cell count per axis is
// floor(dimension / (tile + leading + trailing margin)); a texture too small
// for a single padded cell yields a valid empty atlas.
func FromGridWithPadding(texture TextureID, tileSize, textureDimensions math.Vec2, padding PaddingSpec) (*Atlas, error) {
	if tileSize.X <= 0 || tileSize.Y <= 0 {
		return nil, ErrInvalidTileSize
	}

	strideX := tileSize.X + padding.horizontal()
	strideY := tileSize.Y + padding.vertical()
	if strideX <= 0 || strideY <= 0 {
		return nil, ErrInvalidPadding
	}

	columns := int(textureDimensions.X / strideX)
	rows := int(textureDimensions.Y / strideY)

	a := NewEmpty(texture, textureDimensions)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			min := math.Vec2{
				X: strideX*float32(x) + padding.Left,
				Y: strideY*float32(y) + padding.Top,
			}
			a.Add(Rect{Min: min, Max: min.Add(tileSize)})
		}
	}
	return a, nil
}

// Add appends a rectangle and returns its sprite index. Overlap with existing
// rectangles is not checked.
func (a *Atlas) Add(rect Rect) int {
	a.rects = append(a.rects, rect)
	return len(a.rects) - 1
}

// Len returns the number of rectangles in the atlas.
func (a *Atlas) Len() int {
	return len(a.rects)
}

// IsEmpty reports whether the atlas has no rectangles.
func (a *Atlas) IsEmpty() bool {
	return len(a.rects) == 0
}

// Rect returns the rectangle at the given sprite index.
func (a *Atlas) Rect(index int) Rect {
	return a.rects[index]
}

// Rects returns the ordered rectangle sequence. The returned slice is the
// atlas's own storage; callers must not modify it.
func (a *Atlas) Rects() []Rect {
	return a.rects
}

// TextureIndex returns the sprite index recorded for a source texture when the
// atlas was packed from independently identified images. Grid-built and empty
// atlases record no sources, so every lookup on them misses.
func (a *Atlas) TextureIndex(id TextureID) (int, bool) {
	index, ok := a.handles[id]
	return index, ok
}

// RectBuffer flattens the rectangle sequence into min.x, min.y, max.x, max.y
// runs in sprite-index order. Together with Size this is the layout a GPU
// binding layer uploads directly.
func (a *Atlas) RectBuffer() []float32 {
	buf := make([]float32, 0, len(a.rects)*4)
	for _, r := range a.rects {
		buf = append(buf, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	return buf
}
