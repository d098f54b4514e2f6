package burst

import "time"

// playback is the per-controller state machine that turns elapsed time into
// cursor moves. It refers to its animation by name and resolves it through
// the controller registry on every use, so replacing or removing a definition
// never leaves it holding a stale one.
//
// States: idle (name == "" or cursor == -1), playing, paused, finished.
type playback struct {
	ctrl *AnimationController

	name      string
	cursor    int
	direction int
	elapsed   time.Duration
	paused    bool
	finished  bool
	notified  bool // finished callback already fired for this play
}

func newPlayback(c *AnimationController) *playback {
	return &playback{ctrl: c, cursor: -1, direction: 1}
}

// current resolves the bound animation. An animation that vanished from the
// registry idles the engine.
func (p *playback) current() *Animation {
	if p.name == "" {
		return nil
	}
	anim, ok := p.ctrl.animations[p.name]
	if !ok || len(anim.Frames) == 0 {
		p.unbind()
		return nil
	}
	if p.cursor >= len(anim.Frames) {
		p.cursor = len(anim.Frames) - 1
	}
	return anim
}

// start binds anim and enters playing at the requested cursor.
func (p *playback) start(anim *Animation, reversed bool, startFrame int) {
	p.name = anim.Name
	p.cursor = -1
	p.elapsed = 0
	p.paused = false
	p.finished = false
	p.notified = false
	p.direction = 1
	if reversed {
		p.direction = -1
	}

	last := len(anim.Frames) - 1
	cursor := startFrame
	if reversed && startFrame == 0 {
		cursor = last
	}
	cursor = max(0, min(cursor, last))

	debugf("play %q from %d (direction %d)", anim.Name, cursor, p.direction)
	p.moveTo(anim, cursor)
}

// update advances the cursor by whole frame durations. Leftover time is
// carried to the next call.
func (p *playback) update(dt time.Duration) {
	if p.paused || p.finished || p.cursor < 0 || dt <= 0 {
		return
	}
	anim := p.current()
	if anim == nil {
		return
	}

	p.elapsed += dt
	frameDur := anim.FrameDuration()
	n := len(anim.Frames)
	for p.elapsed >= frameDur {
		p.elapsed -= frameDur
		next := p.cursor + p.direction
		if next < 0 || next >= n {
			if !anim.Looped {
				p.complete(anim)
				return
			}
			next = ((next % n) + n) % n
		}
		p.moveTo(anim, next)
		// The frame callback may have stopped or replaced the play.
		if p.name != anim.Name || p.paused || p.finished || p.cursor != next {
			return
		}
	}
}

// complete clamps at the boundary just crossed and fires the finished
// callback once per play.
func (p *playback) complete(anim *Animation) {
	p.finished = true
	p.elapsed = 0
	debugf("finished %q at %d", anim.Name, p.cursor)
	if !p.notified {
		p.notified = true
		p.ctrl.fireFinished(anim.Name)
	}
}

func (p *playback) pause() {
	p.paused = true
}

func (p *playback) resume() {
	p.paused = false
}

// stop idles the engine without unbinding the animation.
func (p *playback) stop() {
	p.paused = true
	p.cursor = -1
	p.elapsed = 0
	debugf("stop %q", p.name)
}

// reset re-enters playing at the natural start for the current direction,
// reviving finished and paused plays.
func (p *playback) reset() {
	anim := p.current()
	if anim == nil {
		return
	}
	p.paused = false
	p.finished = false
	p.notified = false
	p.elapsed = 0
	start := 0
	if p.direction < 0 {
		start = len(anim.Frames) - 1
	}
	debugf("reset %q", anim.Name)
	p.moveTo(anim, start)
}

// finish jumps to the terminal frame for the current direction.
func (p *playback) finish() {
	anim := p.current()
	if anim == nil {
		return
	}
	end := len(anim.Frames) - 1
	if p.direction < 0 {
		end = 0
	}
	if p.cursor != end {
		p.moveTo(anim, end)
	}
	p.complete(anim)
}

func (p *playback) unbind() {
	p.name = ""
	p.cursor = -1
	p.elapsed = 0
	p.paused = false
	p.finished = false
	p.notified = false
}

// moveTo sets the cursor and pushes the resolved frame to the sprite.
func (p *playback) moveTo(anim *Animation, cursor int) {
	p.cursor = cursor
	p.ctrl.showFrame(anim.Name, anim.Frames[cursor], cursor)
}
