package burst

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// placement names the pair of Sprite fields a TweenGroup drives.
type placement uint8

const (
	placePosition placement = iota
	placeScale
	placeAlpha
)

// TweenGroup eases one placement of a Sprite (position, scale or alpha)
// towards a target. Build one with TweenPosition, TweenScale or TweenAlpha
// and either step it yourself or hand it to Stage.AddTween.
//
// A hidden sprite's tween keeps its clock running but leaves the sprite
// alone until it is visible again; the end value is always written when the
// tween finishes. A killed sprite ends the tween on the spot, untouched.
// Tweens move sprites and never blend between animation frames.
type TweenGroup struct {
	sprite *Sprite
	place  placement
	a, b   *gween.Tween
	Done   bool
}

func newTweenGroup(s *Sprite, p placement, a, b *gween.Tween) *TweenGroup {
	return &TweenGroup{sprite: s, place: p, a: a, b: b}
}

// Update advances the tween by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.sprite.Alive() {
		g.Done = true
		return
	}

	va, done := g.a.Update(dt)
	var vb float32
	if g.b != nil {
		var doneB bool
		vb, doneB = g.b.Update(dt)
		done = done && doneB
	}
	g.Done = done
	if g.sprite.Visible || done {
		g.apply(float64(va), float64(vb))
	}
}

func (g *TweenGroup) apply(va, vb float64) {
	s := g.sprite
	switch g.place {
	case placePosition:
		s.X, s.Y = va, vb
	case placeScale:
		s.ScaleX, s.ScaleY = va, vb
	case placeAlpha:
		s.Alpha = va
	}
}

// TweenPosition glides s from where it is now to (toX, toY) over duration
// seconds.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(s, placePosition,
		gween.New(float32(s.X), float32(toX), duration, fn),
		gween.New(float32(s.Y), float32(toY), duration, fn))
}

// TweenScale grows or shrinks s to (toSX, toSY) over duration seconds. The
// sprite's reported Width and Height follow along.
func TweenScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(s, placeScale,
		gween.New(float32(s.ScaleX), float32(toSX), duration, fn),
		gween.New(float32(s.ScaleY), float32(toSY), duration, fn))
}

// TweenAlpha fades s to the target alpha over duration seconds. At alpha 0
// the sprite is skipped when drawing.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(s, placeAlpha,
		gween.New(float32(s.Alpha), float32(to), duration, fn), nil)
}
