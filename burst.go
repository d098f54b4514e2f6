package burst

import (
	"errors"
	"time"
)

// Rect is an integer axis-aligned rectangle in source-image pixels. The
// origin is the top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Within reports whether r lies fully inside a width×height image.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= width && r.Y+r.Height <= height
}

// Point is an integer 2D displacement.
type Point struct {
	X, Y int
}

// Size is an integer width/height pair.
type Size struct {
	W, H int
}

// DefaultFrameRate is the playback rate used when an animation is added with
// a non-positive frame rate.
const DefaultFrameRate = 30

// MaxFrameRate is the highest rate that still gives a non-zero frame duration.
// Add clamps faster rates to it.
const MaxFrameRate = int(time.Second)

var (
	// ErrNoImage is returned when an atlas is parsed without a source image.
	ErrNoImage = errors.New("burst: no source image")
	// ErrNoDescription is returned when an atlas description is missing or empty.
	ErrNoDescription = errors.New("burst: no atlas description")
	// ErrMalformed is wrapped by every structural atlas parse failure.
	ErrMalformed = errors.New("burst: malformed atlas description")
)
