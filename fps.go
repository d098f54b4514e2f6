package burst

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay displays the current FPS and TPS in the top-left corner of the
// stage. It uses a custom internal image and ebitenutil.DebugPrint.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
	text    string
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

// step redraws the overlay at most every fpsRefresh. It reports whether the
// text was refreshed.
func (o *fpsOverlay) step(dt time.Duration) bool {
	o.elapsed += dt
	if o.text != "" && o.elapsed < fpsRefresh {
		return false
	}
	o.elapsed = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	return true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
