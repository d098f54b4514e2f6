package burst

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	s := NewSprite("pos")
	s.X = 10
	s.Y = 20

	g := TweenPosition(s, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", s.X)
	}
	if math.Abs(s.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", s.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	s := NewSprite("scale")

	g := TweenScale(s, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", s.ScaleX)
	}
	if math.Abs(s.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", s.ScaleY)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	s := NewSprite("alpha")

	tw := TweenAlpha(s, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(s.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", s.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(s.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", s.Alpha)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	s := NewSprite("done")
	g := TweenPosition(s, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupKilledSprite(t *testing.T) {
	s := NewSprite("killed")
	s.X = 10
	s.Y = 20

	g := TweenPosition(s, 100, 200, 1.0, ease.Linear)
	s.Kill()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after killed sprite detected")
	}
	if s.X != 10 || s.Y != 20 {
		t.Errorf("position changed to (%f, %f) on killed sprite", s.X, s.Y)
	}
}

func TestTweenGroupKilledMidAnimation(t *testing.T) {
	s := NewSprite("mid-kill")

	g := TweenPosition(s, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	s.Kill()
	savedX, savedY := s.X, s.Y

	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done after sprite killed mid-animation")
	}
	if s.X != savedX || s.Y != savedY {
		t.Error("sprite fields should not change after Kill")
	}
}

func TestTweenHiddenSpriteHoldsPlacement(t *testing.T) {
	s := NewSprite("hidden")
	g := TweenPosition(s, 100, 50, 1.0, ease.Linear)

	s.Visible = false
	g.Update(0.25)
	g.Update(0.25)
	if s.X != 0 || s.Y != 0 {
		t.Errorf("hidden sprite moved to (%f, %f)", s.X, s.Y)
	}
	if g.Done {
		t.Fatal("tween finished early")
	}

	// The clock kept running while hidden.
	s.Visible = true
	g.Update(0.25)
	if math.Abs(s.X-75) > 0.5 || math.Abs(s.Y-37.5) > 0.5 {
		t.Errorf("position = (%f, %f), want ~(75, 37.5)", s.X, s.Y)
	}
}

func TestTweenHiddenSpriteLandsOnTarget(t *testing.T) {
	s := NewSprite("hidden-end")
	s.Visible = false
	g := TweenScale(s, 2, 4, 0.5, ease.Linear)

	g.Update(0.25)
	if s.ScaleX != 1 || s.ScaleY != 1 {
		t.Errorf("hidden sprite scaled to (%f, %f) mid-tween", s.ScaleX, s.ScaleY)
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.ScaleX-2) > 0.01 || math.Abs(s.ScaleY-4) > 0.01 {
		t.Errorf("scale = (%f, %f), want (2, 4)", s.ScaleX, s.ScaleY)
	}
}

func TestTweenDoesNotTouchAnimation(t *testing.T) {
	s, r := newAnimatedSprite(3)
	s.Animation.Add("walk", []int{0, 1, 2}, 10, true)
	s.Animation.Play("walk")
	r.reset()

	g := TweenPosition(s, 100, 0, 1.0, ease.Linear)
	g.Update(0.5)

	if s.Animation.Cursor() != 0 || len(r.frames) != 0 {
		t.Errorf("tween moved the animation: cursor %d callbacks %+v", s.Animation.Cursor(), r.frames)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	linear := NewSprite("linear")
	cubic := NewSprite("cubic")

	gL := TweenPosition(linear, 100, 0, 1.0, ease.Linear)
	gC := TweenPosition(cubic, 100, 0, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	if math.Abs(linear.X-cubic.X) < 1.0 {
		t.Errorf("easing curves should differ at midpoint: linear=%f cubic=%f", linear.X, cubic.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	s := NewSprite("alloc")
	g := TweenPosition(s, 100, 100, 1.0, ease.Linear)

	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
