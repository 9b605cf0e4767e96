package atlas

// Animation describes a contiguous frame range of an atlas played at a fixed
// rate. Frame f occupies sprite index First+f.
type Animation struct {
	First int     // sprite index of the first frame
	Count int     // number of frames
	FPS   float32 // playback rate in frames per second
	Loop  bool
}

// FrameAt returns the sprite index shown t seconds into the animation.
// Non-looping animations hold their last frame.
func (an Animation) FrameAt(t float32) int {
	if an.Count <= 0 {
		return an.First
	}
	frame := int(t * an.FPS)
	if frame < 0 {
		frame = 0
	}
	if an.Loop {
		frame %= an.Count
	} else if frame >= an.Count {
		frame = an.Count - 1
	}
	return an.First + frame
}

// Player tracks playback position for one animated sprite.
type Player struct {
	Anim    Animation
	Elapsed float32
}

// Advance accumulates dt seconds and writes the current frame's sprite index
// to the sprite.
func (p *Player) Advance(sprite *Sprite, dt float32) {
	p.Elapsed += dt
	sprite.Index = p.Anim.FrameAt(p.Elapsed)
}

// Reset rewinds playback to the first frame.
func (p *Player) Reset() {
	p.Elapsed = 0
}
