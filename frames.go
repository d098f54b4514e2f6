package burst

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameCollection is an ordered sequence of frames bound to one source image.
// Insertion order is the animation-index order; indices never change once a
// frame is appended.
type FrameCollection struct {
	image  *ebiten.Image
	frames []*Frame
	index  map[*Frame]int
}

// NewFrameCollection creates an empty collection bound to img for its
// lifetime.
func NewFrameCollection(img *ebiten.Image) *FrameCollection {
	return &FrameCollection{
		image: img,
		index: make(map[*Frame]int),
	}
}

// Image returns the bound source image. It is shared read-only by every frame.
func (c *FrameCollection) Image() *ebiten.Image {
	return c.image
}

// Append adds f at the end of the collection and returns its index. A nil
// frame or one already present is rejected with -1.
func (c *FrameCollection) Append(f *Frame) int {
	if f == nil {
		return -1
	}
	if _, ok := c.index[f]; ok {
		return -1
	}
	c.frames = append(c.frames, f)
	c.index[f] = len(c.frames) - 1
	return len(c.frames) - 1
}

// Get returns the frame at position i, or nil if i is out of range.
func (c *FrameCollection) Get(i int) *Frame {
	if i < 0 || i >= len(c.frames) {
		return nil
	}
	return c.frames[i]
}

// IndexOf returns the position of f by identity, or -1 if f is not part of
// this collection.
func (c *FrameCollection) IndexOf(f *Frame) int {
	if i, ok := c.index[f]; ok {
		return i
	}
	return -1
}

// FindByPrefix returns every frame whose name starts with prefix, in
// collection order. Matching is case-sensitive; unnamed frames never match.
func (c *FrameCollection) FindByPrefix(prefix string) []*Frame {
	var out []*Frame
	for _, f := range c.frames {
		if f.name != "" && strings.HasPrefix(f.name, prefix) {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of frames.
func (c *FrameCollection) Len() int {
	return len(c.frames)
}

// All returns the frames in order. The returned slice MUST NOT be mutated.
func (c *FrameCollection) All() []*Frame {
	return c.frames
}

// SliceGrid cuts img into frameW×frameH cells read left-to-right,
// top-to-bottom. Frames are named frame0000, frame0001, ... A zero frameW
// defaults to the image height and a zero frameH to the image width, each
// clamped to the image. Partial cells at the right and bottom edges are
// dropped.
func SliceGrid(img *ebiten.Image, frameW, frameH int) (*FrameCollection, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	b := img.Bounds()
	imgW, imgH := b.Dx(), b.Dy()
	if frameW == 0 {
		frameW = min(imgH, imgW)
	}
	if frameH == 0 {
		frameH = min(imgW, imgH)
	}
	if frameW <= 0 || frameH <= 0 || frameW > imgW || frameH > imgH {
		return nil, fmt.Errorf("burst: grid cell %dx%d does not fit %dx%d image", frameW, frameH, imgW, imgH)
	}

	c := NewFrameCollection(img)
	i := 0
	for y := 0; y+frameH <= imgH; y += frameH {
		for x := 0; x+frameW <= imgW; x += frameW {
			c.Append(NewFrame(
				fmt.Sprintf("frame%04d", i),
				Rect{X: x, Y: y, Width: frameW, Height: frameH},
				Size{W: frameW, H: frameH},
				Point{},
			))
			i++
		}
	}
	return c, nil
}
