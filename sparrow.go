package burst

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// SparrowAtlas is the parsed element tree of a Sparrow (Starling) texture
// atlas. Attributes stay strings so missing and malformed numbers can be told
// apart during ParseSparrow.
type SparrowAtlas struct {
	ImagePath   string
	SubTextures []SubTexture
}

// SubTexture is one <SubTexture> element. A non-empty FrameX marks a trimmed
// sprite, in which case FrameY, FrameWidth and FrameHeight are required too.
type SubTexture struct {
	Name        string `xml:"name,attr"`
	X           string `xml:"x,attr"`
	Y           string `xml:"y,attr"`
	Width       string `xml:"width,attr"`
	Height      string `xml:"height,attr"`
	FrameX      string `xml:"frameX,attr"`
	FrameY      string `xml:"frameY,attr"`
	FrameWidth  string `xml:"frameWidth,attr"`
	FrameHeight string `xml:"frameHeight,attr"`
}

// DecodeSparrow reads raw Sparrow XML and parses it with ParseSparrow. Every
// <SubTexture> element in the document becomes a frame, however deeply it is
// nested. The imagePath attribute is taken from the root element.
func DecodeSparrow(data []byte, img *ebiten.Image) (*FrameCollection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDescription
	}
	doc, err := decodeSparrowDoc(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ParseSparrow(doc, img)
}

func decodeSparrowDoc(data []byte) (*SparrowAtlas, error) {
	doc := &SparrowAtlas{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth, elements := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			elements++
			if depth == 0 {
				for _, a := range el.Attr {
					if a.Name.Local == "imagePath" {
						doc.ImagePath = a.Value
					}
				}
			}
			if el.Name.Local == "SubTexture" {
				var st SubTexture
				if err := dec.DecodeElement(&st, &el); err != nil {
					return nil, err
				}
				doc.SubTextures = append(doc.SubTextures, st)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if elements == 0 || depth != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return doc, nil
}

// ParseSparrow builds a frame collection from a parsed Sparrow document, one
// frame per SubTexture in document order. Trimmed entries get
// offset (-frameX, -frameY) and source size (frameWidth, frameHeight);
// untrimmed ones get a zero offset and their own width and height. Any bad
// numeric attribute fails the whole parse.
func ParseSparrow(doc *SparrowAtlas, img *ebiten.Image) (*FrameCollection, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if doc == nil {
		return nil, ErrNoDescription
	}

	c := NewFrameCollection(img)
	for i := range doc.SubTextures {
		f, err := sparrowFrame(&doc.SubTextures[i])
		if err != nil {
			return nil, fmt.Errorf("%w: SubTexture #%d (%q): %v", ErrMalformed, i, doc.SubTextures[i].Name, err)
		}
		c.Append(f)
	}
	return c, nil
}

// LoadSparrow reads the source image and XML description from disk and
// parses them.
func LoadSparrow(imagePath, descPath string) (*FrameCollection, error) {
	img, data, err := loadAtlasFiles(imagePath, descPath)
	if err != nil {
		return nil, err
	}
	c, err := DecodeSparrow(data, img)
	if err != nil {
		return nil, fmt.Errorf("burst: parse %s: %w", descPath, err)
	}
	return c, nil
}

func sparrowFrame(st *SubTexture) (*Frame, error) {
	var p attrParser
	rect := Rect{
		X:      p.int("x", st.X),
		Y:      p.int("y", st.Y),
		Width:  p.int("width", st.Width),
		Height: p.int("height", st.Height),
	}

	size := Size{W: rect.Width, H: rect.Height}
	var offset Point
	if st.FrameX != "" {
		offset = Point{X: -p.int("frameX", st.FrameX), Y: -p.int("frameY", st.FrameY)}
		size = Size{W: p.int("frameWidth", st.FrameWidth), H: p.int("frameHeight", st.FrameHeight)}
	}
	if p.err != nil {
		return nil, p.err
	}
	return NewFrame(st.Name, rect, size, offset), nil
}

// attrParser converts attributes, keeping only the first failure.
type attrParser struct {
	err error
}

func (p *attrParser) int(name, value string) int {
	if p.err != nil {
		return 0
	}
	if value == "" {
		p.err = fmt.Errorf("missing attribute %q", name)
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.err = fmt.Errorf("attribute %q: %w", name, err)
		return 0
	}
	return n
}
