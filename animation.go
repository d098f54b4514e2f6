package burst

import "time"

// Animation is a named, ordered list of frame indices into a sprite's frame
// collection, played at FrameRate frames per second. Indices are validated
// lazily during playback, not when the animation is added.
type Animation struct {
	Name      string
	Frames    []int
	FrameRate int
	Looped    bool
}

// Len returns the number of frames in the animation.
func (a *Animation) Len() int {
	return len(a.Frames)
}

// FrameDuration returns how long each frame is displayed. It is never less
// than one nanosecond.
func (a *Animation) FrameDuration() time.Duration {
	rate := a.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return max(time.Second/time.Duration(rate), 1)
}

// Duration returns the time one pass over every frame takes.
func (a *Animation) Duration() time.Duration {
	return a.FrameDuration() * time.Duration(len(a.Frames))
}

// PlayOptions tweaks AnimationController.PlayWith. The zero value restarts the
// animation forward from its first frame.
type PlayOptions struct {
	// NoRestart leaves the animation running uninterrupted when it is already
	// the active, unfinished animation. A paused one is resumed.
	NoRestart bool
	// Reversed plays from the end towards index 0.
	Reversed bool
	// StartFrame is the cursor to start at, clamped into range. With Reversed
	// set, 0 means the last frame.
	StartFrame int
}
