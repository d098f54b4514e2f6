package burst

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tidwall/gjson"
)

// DecodeJSONPacker parses a TexturePacker-style JSON description. Leading and
// trailing bytes outside the outermost {...} span are discarded before
// decoding, since some exporters wrap the document in noise.
func DecodeJSONPacker(data []byte, img *ebiten.Image) (*FrameCollection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDescription
	}
	trimmed, err := trimJSON(data)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(trimmed) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	return ParseJSONPacker(gjson.ParseBytes(trimmed), img)
}

// ParseJSONPacker builds a frame collection from an already-parsed JSON
// document. "frames" may be an array of frame objects carrying a "filename",
// or an object keyed by filename. The keyed form is sorted by filename,
// case-insensitively, before indices are assigned.
//
// The "rotated" flag is recorded on each frame but never applied.
func ParseJSONPacker(doc gjson.Result, img *ebiten.Image) (*FrameCollection, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	frames := doc.Get("frames")

	var entries []jsonEntry
	switch {
	case frames.IsArray():
		for _, v := range frames.Array() {
			entries = append(entries, jsonEntry{name: v.Get("filename").String(), value: v})
		}
	case frames.IsObject():
		frames.ForEach(func(key, value gjson.Result) bool {
			entries = append(entries, jsonEntry{name: key.String(), value: value})
			return true
		})
		sort.SliceStable(entries, func(i, j int) bool {
			return compareFold(entries[i].name, entries[j].name) < 0
		})
	default:
		return nil, fmt.Errorf("%w: \"frames\" is neither an array nor an object", ErrMalformed)
	}

	c := NewFrameCollection(img)
	for i, e := range entries {
		f, err := jsonFrame(e)
		if err != nil {
			return nil, fmt.Errorf("%w: frame #%d (%q): %v", ErrMalformed, i, e.name, err)
		}
		c.Append(f)
	}
	return c, nil
}

// LoadJSONPacker reads the source image and JSON description from disk and
// parses them. See DecodeJSONPacker.
func LoadJSONPacker(imagePath, descPath string) (*FrameCollection, error) {
	img, data, err := loadAtlasFiles(imagePath, descPath)
	if err != nil {
		return nil, err
	}
	c, err := DecodeJSONPacker(data, img)
	if err != nil {
		return nil, fmt.Errorf("burst: parse %s: %w", descPath, err)
	}
	return c, nil
}

type jsonEntry struct {
	name  string
	value gjson.Result
}

func jsonFrame(e jsonEntry) (*Frame, error) {
	var vals [8]int
	paths := [8]string{
		"frame.x", "frame.y", "frame.w", "frame.h",
		"sourceSize.w", "sourceSize.h",
		"spriteSourceSize.x", "spriteSourceSize.y",
	}
	for i, p := range paths {
		v, err := jsonInt(e.value, p)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	f := NewFrame(e.name,
		Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]},
		Size{W: vals[4], H: vals[5]},
		Point{X: vals[6], Y: vals[7]},
	)
	f.rotated = e.value.Get("rotated").Bool()
	return f, nil
}

func jsonInt(obj gjson.Result, path string) (int, error) {
	v := obj.Get(path)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s: missing or not a number", path)
	}
	if v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("%s: %v is not an integer", path, v.Num)
	}
	return int(v.Num), nil
}

// trimJSON returns the outermost {...} span of data.
func trimJSON(data []byte) ([]byte, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformed)
	}
	return data[start : end+1], nil
}

// compareFold orders strings case-insensitively. Names equal under folding
// compare as 0 and keep document order under the stable sort.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// loadAtlasFiles reads the image and description shared by both file loaders.
func loadAtlasFiles(imagePath, descPath string) (*ebiten.Image, []byte, error) {
	if descPath == "" {
		return nil, nil, ErrNoDescription
	}
	img, err := LoadImage(imagePath)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(descPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoDescription, err)
	}
	return img, data, nil
}
