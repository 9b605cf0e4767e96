package atlas

import "github.com/Faultbox/atlaskit/pkg/math"

// Rect is an axis-aligned sub-region of an atlas in pixel coordinates,
// from the top-left corner (Min) to the bottom-right corner (Max).
type Rect struct {
	Min math.Vec2
	Max math.Vec2
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() math.Vec2 {
	return r.Max.Sub(r.Min)
}

// Valid reports whether the corners are consistently ordered.
func (r Rect) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}
