package atlas

import (
	"fmt"
	"image"
	"sort"

	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/atlaskit/pkg/math"
)

// packSpacing is the gap in pixels left between packed images so bilinear
// sampling at a rectangle edge cannot pick up a neighbor.
const packSpacing = 1

// Builder packs independently identified images into a single sheet and
// records which sprite index each source texture landed at. This is the only
// path that populates an Atlas's texture-index map.
type Builder struct {
	maxWidth  int
	maxHeight int
	entries   []builderEntry
	seen      map[TextureID]struct{}
}

type builderEntry struct {
	id  TextureID
	img image.Image
}

// NewBuilder creates a builder for a sheet of at most maxWidth x maxHeight
// pixels. The built sheet keeps maxWidth and is cropped to the used height.
func NewBuilder(maxWidth, maxHeight int) *Builder {
	return &Builder{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		seen:      make(map[TextureID]struct{}),
	}
}

// Add queues an image for packing under the given texture id.
func (b *Builder) Add(id TextureID, img image.Image) error {
	if _, dup := b.seen[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	bounds := img.Bounds()
	if bounds.Dx() > b.maxWidth || bounds.Dy() > b.maxHeight {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d",
			ErrImageTooLarge, bounds.Dx(), bounds.Dy(), b.maxWidth, b.maxHeight)
	}
	b.seen[id] = struct{}{}
	b.entries = append(b.entries, builderEntry{id: id, img: img})
	return nil
}

// Len returns the number of queued images.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build packs the queued images into shelves (tallest first, so shelves stay
// dense) and composites them into one RGBA sheet. The returned atlas carries
// the given sheet handle, one rectangle per image in pack order, and the
// texture-index map keyed by the ids passed to Add.
func (b *Builder) Build(sheet TextureID) (*Atlas, *image.RGBA, error) {
	order := make([]builderEntry, len(b.entries))
	copy(order, b.entries)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].img.Bounds().Dy() > order[j].img.Bounds().Dy()
	})

	// First pass: shelf placement.
	offsets := make([]image.Point, len(order))
	x, y, shelfHeight := 0, 0, 0
	for i, e := range order {
		w, h := e.img.Bounds().Dx(), e.img.Bounds().Dy()
		if x+w > b.maxWidth {
			y += shelfHeight + packSpacing
			x = 0
			shelfHeight = 0
		}
		if y+h > b.maxHeight {
			return nil, nil, fmt.Errorf("%w: %d images into %dx%d",
				ErrAtlasFull, len(order), b.maxWidth, b.maxHeight)
		}
		offsets[i] = image.Pt(x, y)
		x += w + packSpacing
		if h > shelfHeight {
			shelfHeight = h
		}
	}
	usedHeight := y + shelfHeight

	// Second pass: composite and record rectangles.
	img := image.NewRGBA(image.Rect(0, 0, b.maxWidth, usedHeight))
	a := NewEmpty(sheet, math.Vec2{X: float32(b.maxWidth), Y: float32(usedHeight)})
	a.handles = make(map[TextureID]int, len(order))
	for i, e := range order {
		w, h := e.img.Bounds().Dx(), e.img.Bounds().Dy()
		xdraw.Copy(img, offsets[i], e.img, e.img.Bounds(), xdraw.Src, nil)
		min := math.Vec2{X: float32(offsets[i].X), Y: float32(offsets[i].Y)}
		index := a.Add(Rect{
			Min: min,
			Max: min.Add(math.Vec2{X: float32(w), Y: float32(h)}),
		})
		a.handles[e.id] = index
	}
	return a, img, nil
}
