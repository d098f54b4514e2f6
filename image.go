package burst

import (
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage decodes an image file into an *ebiten.Image. A missing file
// wraps both ErrNoImage and fs.ErrNotExist.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, ErrNoImage
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoImage, path, err)
		}
		return nil, fmt.Errorf("burst: decode image %s: %w", path, err)
	}
	return img, nil
}
