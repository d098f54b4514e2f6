package burst

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one rectangular region of a source image plus its placement
// metadata. Frames are immutable once built; use CopyTo to duplicate one into
// another collection.
type Frame struct {
	name       string
	rect       Rect  // region inside the source image
	sourceSize Size  // untrimmed size as authored
	offset     Point // displacement of rect from the untrimmed top-left
	rotated    bool  // stored rotated in the atlas; recorded, never applied
}

// NewFrame creates a frame. The name may be empty for index-only atlases.
func NewFrame(name string, rect Rect, sourceSize Size, offset Point) *Frame {
	return &Frame{
		name:       name,
		rect:       rect,
		sourceSize: sourceSize,
		offset:     offset,
	}
}

// Name returns the frame name, or "" for unnamed frames.
func (f *Frame) Name() string { return f.name }

// Rect returns the region of the source image covered by the frame.
func (f *Frame) Rect() Rect { return f.rect }

// SourceSize returns the untrimmed dimensions of the original image.
func (f *Frame) SourceSize() Size { return f.sourceSize }

// Offset returns the displacement of the cropped region from the untrimmed
// top-left corner.
func (f *Frame) Offset() Point { return f.offset }

// Rotated reports whether the atlas flagged this frame as stored rotated.
// Rotation is not applied when drawing.
func (f *Frame) Rotated() bool { return f.rotated }

// WithRotated returns a copy of f carrying the given rotation flag.
func (f *Frame) WithRotated(rotated bool) *Frame {
	cp := f.CopyTo(nil)
	cp.rotated = rotated
	return cp
}

// CopyTo duplicates every field of f into dst and returns dst. If dst is nil a
// new frame is allocated.
func (f *Frame) CopyTo(dst *Frame) *Frame {
	if dst == nil {
		dst = &Frame{}
	}
	*dst = *f
	return dst
}

// SubImage returns the frame's region of img.
func (f *Frame) SubImage(img *ebiten.Image) *ebiten.Image {
	r := f.rect
	return img.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame{name: %q, x: %d, y: %d, width: %d, height: %d}",
		f.name, f.rect.X, f.rect.Y, f.rect.Width, f.rect.Height)
}
