package burst

import "time"

// FrameSlot is the sprite side of an AnimationController: the frames that
// animation indices resolve into, and the slot the displayed frame is pushed
// to.
type FrameSlot interface {
	Frames() *FrameCollection
	SetFrame(f *Frame)
}

// AnimationController owns the animations registered for one sprite and
// dispatches playback commands to a single playback state machine.
//
// A controller is not safe for concurrent use. Drive Update, Play and Add from
// one goroutine (normally the game loop).
type AnimationController struct {
	// OnFrameChange fires synchronously whenever the displayed frame changes
	// through playback or SetFrameIndex. name is "" when no animation is bound.
	OnFrameChange func(name string, frame, cursor int)
	// OnFinish fires once per play of a non-looped animation that reaches its
	// terminal frame, and from Finish.
	OnFinish func(name string)

	slot       FrameSlot
	animations map[string]*Animation
	order      []string
	play       *playback
	frameIndex int
}

// NewAnimationController creates a controller bound to slot.
func NewAnimationController(slot FrameSlot) *AnimationController {
	c := &AnimationController{
		slot:       slot,
		animations: make(map[string]*Animation),
		frameIndex: -1,
	}
	c.play = newPlayback(c)
	return c
}

// Update advances the active animation by dt.
func (c *AnimationController) Update(dt time.Duration) {
	c.play.update(dt)
}

// Add registers an animation under name, replacing any previous one. A
// non-positive framerate means DefaultFrameRate and one above MaxFrameRate is
// clamped to it. An empty frame list creates nothing. Frame indices are
// checked when they are played.
func (c *AnimationController) Add(name string, frames []int, framerate int, looped bool) bool {
	if len(frames) == 0 {
		warnf("animation %q has no frames, not added", name)
		return false
	}
	for _, f := range frames {
		if f < 0 {
			warnf("animation %q has negative frame index %d, not added", name, f)
			return false
		}
	}
	if framerate <= 0 {
		framerate = DefaultFrameRate
	}
	if framerate > MaxFrameRate {
		warnf("animation %q framerate %d clamped to %d", name, framerate, MaxFrameRate)
		framerate = MaxFrameRate
	}
	if _, ok := c.animations[name]; !ok {
		c.order = append(c.order, name)
	}
	c.animations[name] = &Animation{
		Name:      name,
		Frames:    append([]int(nil), frames...),
		FrameRate: framerate,
		Looped:    looped,
	}
	return true
}

// AddByPrefix registers an animation made of every frame whose name starts
// with prefix, in collection order. When nothing matches the call does
// nothing.
func (c *AnimationController) AddByPrefix(name, prefix string, framerate int, looped bool) bool {
	frames := c.frames()
	if frames == nil {
		return false
	}
	matched := frames.FindByPrefix(prefix)
	if len(matched) == 0 {
		return false
	}
	indices := make([]int, 0, len(matched))
	for _, f := range matched {
		indices = append(indices, frames.IndexOf(f))
	}
	return c.Add(name, indices, framerate, looped)
}

// Remove deletes the named animation. If it is active, playback idles.
func (c *AnimationController) Remove(name string) {
	if _, ok := c.animations[name]; !ok {
		return
	}
	delete(c.animations, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.play.name == name {
		c.play.unbind()
	}
}

// ClearAnimations removes every animation and idles playback.
func (c *AnimationController) ClearAnimations() {
	clear(c.animations)
	c.order = c.order[:0]
	c.play.unbind()
	c.frameIndex = -1
}

// Animation returns a copy of the named animation.
func (c *AnimationController) Animation(name string) (Animation, bool) {
	a, ok := c.animations[name]
	if !ok {
		return Animation{}, false
	}
	cp := *a
	cp.Frames = append([]int(nil), a.Frames...)
	return cp, true
}

// Names returns the animation names in registration order.
func (c *AnimationController) Names() []string {
	return append([]string(nil), c.order...)
}

// Animations returns copies of every animation in registration order.
func (c *AnimationController) Animations() []Animation {
	out := make([]Animation, 0, len(c.order))
	for _, name := range c.order {
		a, _ := c.Animation(name)
		out = append(out, a)
	}
	return out
}

// Play restarts the named animation forward from its first frame. An empty
// name stops and clears the active animation; an unknown name is logged and
// ignored.
func (c *AnimationController) Play(name string) {
	c.PlayWith(name, PlayOptions{})
}

// PlayWith plays the named animation with explicit options.
func (c *AnimationController) PlayWith(name string, opts PlayOptions) {
	if name == "" {
		c.play.stop()
		c.play.unbind()
		return
	}
	anim, ok := c.animations[name]
	if !ok {
		warnf("no such animation %q", name)
		return
	}
	if c.play.name == name && opts.NoRestart && !c.play.finished && c.play.cursor >= 0 {
		c.play.resume()
		return
	}
	if c.play.name != "" && c.play.name != name {
		c.play.stop()
	}
	c.play.start(anim, opts.Reversed, opts.StartFrame)
}

// Reset restarts the active animation from its natural start.
func (c *AnimationController) Reset() { c.play.reset() }

// Finish jumps the active animation to its terminal frame.
func (c *AnimationController) Finish() { c.play.finish() }

// Stop idles the active animation, keeping it bound.
func (c *AnimationController) Stop() {
	if c.play.name != "" {
		c.play.stop()
	}
}

// Pause freezes the active animation on its current frame.
func (c *AnimationController) Pause() {
	if c.play.name != "" {
		c.play.pause()
	}
}

// Resume continues a paused animation. A stopped one needs Play or Reset.
func (c *AnimationController) Resume() {
	if c.play.name != "" && c.play.cursor >= 0 {
		c.play.resume()
	}
}

// SetFrameIndex shows collection frame i directly, bypassing the active
// animation's cursor and timing. Out-of-range indices are logged and ignored.
func (c *AnimationController) SetFrameIndex(i int) {
	frames := c.frames()
	if frames == nil || frames.Get(i) == nil {
		warnf("frame index %d out of range (%d frames)", i, c.NumFrames())
		return
	}
	c.frameIndex = i
	c.slot.SetFrame(frames.Get(i))
	c.fireFrameChange(c.play.name, i, c.play.cursor)
}

// Current returns the name of the bound animation, or "".
func (c *AnimationController) Current() string { return c.play.name }

// Cursor returns the position inside the bound animation, or -1 when idle.
func (c *AnimationController) Cursor() int { return c.play.cursor }

// FrameIndex returns the collection index last pushed to the sprite, or -1.
func (c *AnimationController) FrameIndex() int { return c.frameIndex }

// Paused reports whether playback is paused or stopped.
func (c *AnimationController) Paused() bool { return c.play.paused }

// Finished reports whether the bound animation reached its terminal frame.
func (c *AnimationController) Finished() bool { return c.play.finished }

// Reversed reports whether the bound animation plays backwards.
func (c *AnimationController) Reversed() bool { return c.play.direction < 0 }

// NumFrames returns the number of frames available to the sprite.
func (c *AnimationController) NumFrames() int {
	if frames := c.frames(); frames != nil {
		return frames.Len()
	}
	return 0
}

func (c *AnimationController) frames() *FrameCollection {
	if c.slot == nil {
		return nil
	}
	return c.slot.Frames()
}

// showFrame resolves a collection index for the playback engine.
func (c *AnimationController) showFrame(name string, index, cursor int) {
	var f *Frame
	if frames := c.frames(); frames != nil {
		f = frames.Get(index)
	}
	if f != nil {
		c.frameIndex = index
		c.slot.SetFrame(f)
	} else {
		warnf("animation %q: frame index %d out of range (%d frames)", name, index, c.NumFrames())
	}
	c.fireFrameChange(name, index, cursor)
}

func (c *AnimationController) fireFrameChange(name string, frame, cursor int) {
	if c.OnFrameChange != nil {
		c.OnFrameChange(name, frame, cursor)
	}
}

func (c *AnimationController) fireFinished(name string) {
	if c.OnFinish != nil {
		c.OnFinish(name)
	}
}
