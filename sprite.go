package burst

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite displays one frame of a frame collection and owns the animation
// controller that picks it.
type Sprite struct {
	Name string

	// Placement used by Draw.
	X, Y           float64
	ScaleX, ScaleY float64
	Alpha          float64
	Visible        bool

	// Animation registers and plays animations over the sprite's frames.
	Animation *AnimationController

	frames *FrameCollection
	frame  *Frame
	dead   bool
}

// NewSprite creates a visible sprite with no frames.
func NewSprite(name string) *Sprite {
	s := &Sprite{
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
	}
	s.Animation = NewAnimationController(s)
	return s
}

// LoadGraphic shows the whole of img as a single frame named "Frame".
func (s *Sprite) LoadGraphic(img *ebiten.Image) *Sprite {
	if img == nil {
		warnf("sprite %q: LoadGraphic with nil image", s.Name)
		return s
	}
	b := img.Bounds()
	c := NewFrameCollection(img)
	c.Append(NewFrame("Frame", Rect{Width: b.Dx(), Height: b.Dy()}, Size{W: b.Dx(), H: b.Dy()}, Point{}))
	s.LoadFrames(c)
	return s
}

// LoadAnimatedGraphic slices img into a grid of frameW×frameH frames. See
// SliceGrid for the naming and defaulting rules.
func (s *Sprite) LoadAnimatedGraphic(img *ebiten.Image, frameW, frameH int) *Sprite {
	c, err := SliceGrid(img, frameW, frameH)
	if err != nil {
		warnf("sprite %q: %v", s.Name, err)
		return s
	}
	s.LoadFrames(c)
	return s
}

// LoadFrames binds a parsed frame collection, clears every registered
// animation, and shows frame 0. A nil collection is logged and ignored.
func (s *Sprite) LoadFrames(c *FrameCollection) *FrameCollection {
	if c == nil {
		warnf("sprite %q: no frames to load", s.Name)
		return nil
	}
	s.frames = c
	s.Animation.ClearAnimations()
	s.frame = c.Get(0)
	return c
}

// SetFrame sets the displayed frame. Implements FrameSlot.
func (s *Sprite) SetFrame(f *Frame) {
	s.frame = f
}

// Frame returns the displayed frame, or nil.
func (s *Sprite) Frame() *Frame {
	return s.frame
}

// Frames returns the bound frame collection, or nil. Implements FrameSlot.
func (s *Sprite) Frames() *FrameCollection {
	return s.frames
}

// NumFrames returns the number of frames bound to the sprite.
func (s *Sprite) NumFrames() int {
	if s.frames == nil {
		return 0
	}
	return s.frames.Len()
}

// Width returns the scaled untrimmed width of the displayed frame.
func (s *Sprite) Width() int {
	if s.frame == nil {
		return 0
	}
	return int(float64(s.frame.sourceSize.W) * s.ScaleX)
}

// Height returns the scaled untrimmed height of the displayed frame.
func (s *Sprite) Height() int {
	if s.frame == nil {
		return 0
	}
	return int(float64(s.frame.sourceSize.H) * s.ScaleY)
}

// Kill removes the sprite from updates and drawing. Tweens targeting it stop.
func (s *Sprite) Kill() {
	s.dead = true
}

// Revive undoes Kill.
func (s *Sprite) Revive() {
	s.dead = false
}

// Alive reports whether Kill has not been called.
func (s *Sprite) Alive() bool {
	return !s.dead
}

// Update advances the sprite's animation by dt.
func (s *Sprite) Update(dt time.Duration) {
	if s.dead {
		return
	}
	s.Animation.Update(dt)
}

// Draw renders the displayed frame onto target: the frame's region of the
// source image, shifted by its trim offset, scaled, then placed at (X, Y).
func (s *Sprite) Draw(target *ebiten.Image) {
	if !s.drawable() {
		return
	}
	var op ebiten.DrawImageOptions
	s.drawOptions(&op)
	target.DrawImage(s.frame.SubImage(s.frames.Image()), &op)
}

func (s *Sprite) drawable() bool {
	return !s.dead && s.Visible && s.Alpha != 0 &&
		s.frame != nil && s.frames != nil && s.frames.Image() != nil
}

func (s *Sprite) drawOptions(op *ebiten.DrawImageOptions) {
	op.GeoM.Translate(float64(s.frame.offset.X), float64(s.frame.offset.Y))
	op.GeoM.Scale(s.ScaleX, s.ScaleY)
	op.GeoM.Translate(s.X, s.Y)
	op.ColorScale.ScaleAlpha(float32(s.Alpha))
}
