package burst

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage is the elapsed-time driver for a set of sprites. It implements
// ebiten.Game: every tick it advances sprites and tweens by one TPS step and
// draws the sprites in insertion order.
//
// There is no global stage; create one per game and hand it to Run, or call
// Step and Draw from your own ebiten.Game.
type Stage struct {
	// ClearColor fills the screen before sprites are drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor color.RGBA
	// ShowFPS draws an FPS/TPS readout over the sprites.
	ShowFPS bool

	sprites []*Sprite
	tweens  []*TweenGroup
	width   int
	height  int
	fps     *fpsOverlay
}

// NewStage creates an empty stage with a logical screen of width×height.
func NewStage(width, height int) *Stage {
	return &Stage{width: width, height: height}
}

// Add appends sprites to the stage. Sprites already on the stage are skipped.
func (st *Stage) Add(sprites ...*Sprite) {
	for _, s := range sprites {
		if s == nil || st.indexOf(s) >= 0 {
			continue
		}
		st.sprites = append(st.sprites, s)
	}
}

// Remove takes s off the stage.
func (st *Stage) Remove(s *Sprite) {
	if i := st.indexOf(s); i >= 0 {
		st.sprites = append(st.sprites[:i], st.sprites[i+1:]...)
	}
}

// Sprites returns the stage's sprites. The returned slice MUST NOT be mutated.
func (st *Stage) Sprites() []*Sprite {
	return st.sprites
}

// AddTween schedules g to be stepped with the sprites until it is done.
func (st *Stage) AddTween(g *TweenGroup) {
	if g != nil {
		st.tweens = append(st.tweens, g)
	}
}

// Step advances every live sprite and tween by dt. Killed sprites are
// dropped from the stage and finished tweens are released.
func (st *Stage) Step(dt time.Duration) {
	live := st.sprites[:0]
	for _, s := range st.sprites {
		if !s.Alive() {
			continue
		}
		s.Update(dt)
		live = append(live, s)
	}
	clear(st.sprites[len(live):])
	st.sprites = live

	secs := float32(dt.Seconds())
	running := st.tweens[:0]
	for _, g := range st.tweens {
		g.Update(secs)
		if !g.Done {
			running = append(running, g)
		}
	}
	clear(st.tweens[len(running):])
	st.tweens = running

	if st.ShowFPS {
		if st.fps == nil {
			st.fps = newFPSOverlay()
		}
		st.fps.step(dt)
	}
}

// Update implements ebiten.Game. Each call is one tick of 1s/TPS.
func (st *Stage) Update() error {
	st.Step(tickDuration(ebiten.TPS(), ebiten.ActualTPS()))
	return nil
}

// tickDuration is the length of one tick. With ebiten.SyncWithFPS the fixed
// rate is negative, so the measured rate is used, or 60 TPS before any has
// been measured.
func tickDuration(tps int, actual float64) time.Duration {
	if tps > 0 {
		return time.Second / time.Duration(tps)
	}
	if actual > 0 {
		return time.Duration(float64(time.Second) / actual)
	}
	return time.Second / ebiten.DefaultTPS
}

// Draw implements ebiten.Game.
func (st *Stage) Draw(screen *ebiten.Image) {
	if st.ClearColor.A > 0 {
		screen.Fill(st.ClearColor)
	}
	for _, s := range st.sprites {
		s.Draw(screen)
	}
	if st.ShowFPS && st.fps != nil {
		st.fps.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (st *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	if st.width <= 0 || st.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return st.width, st.height
}

func (st *Stage) indexOf(s *Sprite) int {
	for i, o := range st.sprites {
		if o == s {
			return i
		}
	}
	return -1
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides ebiten's ticks per second when positive.
	TPS int
	// ShowFPS sets Stage.ShowFPS.
	ShowFPS bool
}

// Run opens a window and drives stage until the window closes.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		if stage.width <= 0 || stage.height <= 0 {
			stage.width, stage.height = cfg.Width, cfg.Height
		}
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		stage.ShowFPS = true
	}
	return ebiten.RunGame(stage)
}
