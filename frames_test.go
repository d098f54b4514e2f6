package burst

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newNamedFrames builds a collection of 16×16 frames laid out in a row, one
// per name.
func newNamedFrames(names ...string) *FrameCollection {
	c := NewFrameCollection(ebiten.NewImage(16*max(len(names), 1), 16))
	for i, name := range names {
		c.Append(NewFrame(name, Rect{X: i * 16, Width: 16, Height: 16}, Size{W: 16, H: 16}, Point{}))
	}
	return c
}

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

// --- Frame ---

func TestFrameAccessors(t *testing.T) {
	f := NewFrame("hero", Rect{1, 2, 30, 40}, Size{W: 32, H: 44}, Point{X: -1, Y: 2})
	if f.Name() != "hero" {
		t.Errorf("Name = %q, want hero", f.Name())
	}
	if f.Rect() != (Rect{1, 2, 30, 40}) {
		t.Errorf("Rect = %+v", f.Rect())
	}
	if f.SourceSize() != (Size{W: 32, H: 44}) {
		t.Errorf("SourceSize = %+v", f.SourceSize())
	}
	if f.Offset() != (Point{X: -1, Y: 2}) {
		t.Errorf("Offset = %+v", f.Offset())
	}
	if f.Rotated() {
		t.Error("Rotated = true, want false")
	}
}

func TestFrameCopyTo(t *testing.T) {
	src := NewFrame("a", Rect{1, 2, 3, 4}, Size{W: 5, H: 6}, Point{X: 7, Y: 8}).WithRotated(true)

	fresh := src.CopyTo(nil)
	if fresh == src {
		t.Fatal("CopyTo(nil) returned the source frame")
	}
	if *fresh != *src {
		t.Errorf("copy = %+v, want %+v", *fresh, *src)
	}

	existing := NewFrame("old", Rect{}, Size{}, Point{})
	if got := src.CopyTo(existing); got != existing {
		t.Fatal("CopyTo(dst) did not return dst")
	}
	if existing.Name() != "a" || existing.Rect() != src.Rect() || !existing.Rotated() {
		t.Errorf("existing after copy = %+v", *existing)
	}
}

func TestFrameWithRotatedLeavesOriginal(t *testing.T) {
	f := NewFrame("a", Rect{}, Size{}, Point{})
	r := f.WithRotated(true)
	if f.Rotated() {
		t.Error("original frame changed")
	}
	if !r.Rotated() {
		t.Error("copy not rotated")
	}
}

func TestFrameString(t *testing.T) {
	s := NewFrame("run", Rect{1, 2, 3, 4}, Size{}, Point{}).String()
	if !strings.Contains(s, `"run"`) || !strings.Contains(s, "width: 3") {
		t.Errorf("String = %q", s)
	}
}

// --- FrameCollection ---

func TestFrameCollectionRoundTrip(t *testing.T) {
	rects := []Rect{{0, 0, 10, 10}, {10, 0, 12, 8}, {0, 10, 5, 5}, {22, 0, 1, 1}}
	c := NewFrameCollection(ebiten.NewImage(32, 32))
	for i, r := range rects {
		if got := c.Append(NewFrame("", r, Size{W: r.Width, H: r.Height}, Point{})); got != i {
			t.Fatalf("Append #%d returned %d", i, got)
		}
	}
	if c.Len() != len(rects) {
		t.Fatalf("Len = %d, want %d", c.Len(), len(rects))
	}
	for i, r := range rects {
		if got := c.Get(i).Rect(); got != r {
			t.Errorf("Get(%d).Rect() = %+v, want %+v", i, got, r)
		}
	}
}

func TestFrameCollectionGetOutOfRange(t *testing.T) {
	c := newNamedFrames("a")
	for _, i := range []int{-1, 1, 100} {
		if c.Get(i) != nil {
			t.Errorf("Get(%d) != nil", i)
		}
	}
}

func TestFrameCollectionRejectsDuplicates(t *testing.T) {
	c := newNamedFrames()
	f := NewFrame("a", Rect{}, Size{}, Point{})
	if c.Append(f) != 0 {
		t.Fatal("first Append failed")
	}
	if c.Append(f) != -1 {
		t.Error("duplicate Append accepted")
	}
	if c.Append(nil) != -1 {
		t.Error("nil Append accepted")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestFrameCollectionIndexOfIsIdentityBased(t *testing.T) {
	c := newNamedFrames("a", "b", "c")
	if got := c.IndexOf(c.Get(2)); got != 2 {
		t.Errorf("IndexOf(Get(2)) = %d, want 2", got)
	}
	twin := c.Get(1).CopyTo(nil)
	if got := c.IndexOf(twin); got != -1 {
		t.Errorf("IndexOf(copy) = %d, want -1", got)
	}
}

func TestFrameCollectionFindByPrefix(t *testing.T) {
	c := newNamedFrames("run2", "idle0", "run0", "", "Run1", "run1")
	got := c.FindByPrefix("run")
	want := []string{"run2", "run0", "run1"}
	if len(got) != len(want) {
		t.Fatalf("matched %d frames, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Name() != want[i] {
			t.Errorf("match %d = %q, want %q", i, f.Name(), want[i])
		}
	}
	if got := c.FindByPrefix("walk"); len(got) != 0 {
		t.Errorf("unexpected matches: %v", got)
	}
}

func TestFrameCollectionImageBinding(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	c := NewFrameCollection(img)
	if c.Image() != img {
		t.Error("Image() is not the bound image")
	}
}

// --- SliceGrid ---

func TestSliceGrid(t *testing.T) {
	c, err := SliceGrid(ebiten.NewImage(70, 40), 32, 20)
	if err != nil {
		t.Fatalf("SliceGrid: %v", err)
	}
	// 2 full columns (64px of 70), 2 rows.
	if c.Len() != 4 {
		t.Fatalf("Len = %d, want 4", c.Len())
	}
	tests := []struct {
		i    int
		name string
		rect Rect
	}{
		{0, "frame0000", Rect{0, 0, 32, 20}},
		{1, "frame0001", Rect{32, 0, 32, 20}},
		{2, "frame0002", Rect{0, 20, 32, 20}},
		{3, "frame0003", Rect{32, 20, 32, 20}},
	}
	for _, tt := range tests {
		f := c.Get(tt.i)
		if f.Name() != tt.name || f.Rect() != tt.rect {
			t.Errorf("frame %d = %q %+v, want %q %+v", tt.i, f.Name(), f.Rect(), tt.name, tt.rect)
		}
		if f.SourceSize() != (Size{W: 32, H: 20}) {
			t.Errorf("frame %d SourceSize = %+v", tt.i, f.SourceSize())
		}
	}
}

func TestSliceGridDefaultsToSquareCells(t *testing.T) {
	c, err := SliceGrid(ebiten.NewImage(64, 16), 0, 0)
	if err != nil {
		t.Fatalf("SliceGrid: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len = %d, want 4", c.Len())
	}
}

func TestSliceGridErrors(t *testing.T) {
	if _, err := SliceGrid(nil, 8, 8); err != ErrNoImage {
		t.Errorf("nil image err = %v, want ErrNoImage", err)
	}
	if _, err := SliceGrid(ebiten.NewImage(8, 8), 16, 8); err == nil {
		t.Error("expected error for cell wider than image")
	}
	if _, err := SliceGrid(ebiten.NewImage(8, 8), -1, 8); err == nil {
		t.Error("expected error for negative cell")
	}
}

// --- Rect ---

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		expect bool
	}{
		{"inside", Rect{1, 1, 4, 4}, true},
		{"exact", Rect{0, 0, 10, 10}, true},
		{"overflow right", Rect{8, 0, 4, 4}, false},
		{"negative origin", Rect{-1, 0, 4, 4}, false},
		{"negative size", Rect{0, 0, -1, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Within(10, 10); got != tt.expect {
				t.Errorf("Rect%v.Within(10, 10) = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 5, 5}
	if !r.Contains(10, 20) {
		t.Error("top-left corner not contained")
	}
	if r.Contains(15, 20) {
		t.Error("right edge should be exclusive")
	}
}
