package atlas

import "github.com/Faultbox/atlaskit/pkg/color"

// Sprite is a per-draw-call descriptor selecting one rectangle of an atlas
// and the tint to multiply it with.
type Sprite struct {
	Color color.Color
	Index int
}

// NewSprite returns a sprite for the given atlas index with no tint.
func NewSprite(index int) Sprite {
	return Sprite{
		Color: color.White,
		Index: index,
	}
}
