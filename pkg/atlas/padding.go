package atlas

import "github.com/Faultbox/atlaskit/pkg/math"

// PaddingSpec gives the margins inserted around each grid cell, in the same
// pixel units as the atlas. It keeps neighboring cells from bleeding into each
// other when their edges are sampled.
type PaddingSpec struct {
	Left, Top, Right, Bottom float32
}

// NewPadding builds a padding spec from explicit per-edge margins.
func NewPadding(left, top, right, bottom float32) PaddingSpec {
	return PaddingSpec{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// UniformPadding builds a symmetric spec: v.X on both horizontal edges,
// v.Y on both vertical edges.
func UniformPadding(v math.Vec2) PaddingSpec {
	return NewPadding(v.X, v.Y, v.X, v.Y)
}

func (p PaddingSpec) horizontal() float32 {
	return p.Left + p.Right
}

func (p PaddingSpec) vertical() float32 {
	return p.Top + p.Bottom
}
