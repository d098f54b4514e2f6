// Package pack stores pictures, atlases and animation sets in a single bbolt
// resource file so games can load prepared sprites without parsing atlas
// descriptions at startup.
//
// Layout: bucket "pictures" maps a picture ID to encoded image bytes (PNG),
// "atlases" maps an atlas ID to a JSON frame record that names its picture,
// and "animations" maps a set ID to AnimationSet YAML.
package pack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/burst"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketPictures   = []byte("pictures")
	bucketAtlases    = []byte("atlases")
	bucketAnimations = []byte("animations")
)

// ErrNotFound is returned when an ID is absent from its bucket.
var ErrNotFound = errors.New("pack: not found")

// Pack is an open resource file.
type Pack struct {
	db *bolt.DB
}

// Open opens or creates the resource file at path.
func Open(path string) (*Pack, error) {
	db, err := bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("pack: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketPictures, bucketAtlases, bucketAnimations} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("pack: init %s: %w", path, err)
	}
	return &Pack{db: db}, nil
}

// Close closes the resource file.
func (p *Pack) Close() error {
	return p.db.Close()
}

// PutPicture stores encoded image bytes under id. The bytes must decode as
// an image.
func (p *Pack) PutPicture(id string, data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("pack: picture %q: %w", id, err)
	}
	return p.put(bucketPictures, id, data)
}

// Picture decodes the picture stored under id.
func (p *Pack) Picture(id string) (*ebiten.Image, error) {
	data, err := p.get(bucketPictures, id)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pack: picture %q: %w", id, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

type frameRecord struct {
	Name    string `json:"name,omitempty"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	SourceW int    `json:"sourceW"`
	SourceH int    `json:"sourceH"`
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
	Rotated bool   `json:"rotated,omitempty"`
}

type atlasRecord struct {
	Picture string        `json:"picture"`
	Frames  []frameRecord `json:"frames"`
}

// PutAtlas stores the frames of c under id, referring to pictureID for the
// source image. The picture must already be stored.
func (p *Pack) PutAtlas(id, pictureID string, c *burst.FrameCollection) error {
	if c == nil {
		return fmt.Errorf("pack: atlas %q: no frames", id)
	}
	rec := atlasRecord{Picture: pictureID, Frames: make([]frameRecord, 0, c.Len())}
	for _, f := range c.All() {
		r, size, off := f.Rect(), f.SourceSize(), f.Offset()
		rec.Frames = append(rec.Frames, frameRecord{
			Name: f.Name(),
			X:    r.X, Y: r.Y, W: r.Width, H: r.Height,
			SourceW: size.W, SourceH: size.H,
			OffsetX: off.X, OffsetY: off.Y,
			Rotated: f.Rotated(),
		})
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("pack: atlas %q: %w", id, err)
	}

	return p.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketPictures).Get([]byte(pictureID)) == nil {
			return fmt.Errorf("pack: atlas %q: picture %q: %w", id, pictureID, ErrNotFound)
		}
		return tx.Bucket(bucketAtlases).Put([]byte(id), data)
	})
}

// Atlas rebuilds the frame collection stored under id, bound to its decoded
// picture. Frame order is preserved.
func (p *Pack) Atlas(id string) (*burst.FrameCollection, error) {
	data, err := p.get(bucketAtlases, id)
	if err != nil {
		return nil, err
	}
	var rec atlasRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("pack: atlas %q: %w", id, err)
	}
	img, err := p.Picture(rec.Picture)
	if err != nil {
		return nil, fmt.Errorf("pack: atlas %q: %w", id, err)
	}

	c := burst.NewFrameCollection(img)
	for _, r := range rec.Frames {
		f := burst.NewFrame(r.Name,
			burst.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H},
			burst.Size{W: r.SourceW, H: r.SourceH},
			burst.Point{X: r.OffsetX, Y: r.OffsetY},
		)
		if r.Rotated {
			f = f.WithRotated(true)
		}
		c.Append(f)
	}
	return c, nil
}

// AtlasIDs lists stored atlas IDs in key order.
func (p *Pack) AtlasIDs() ([]string, error) {
	var ids []string
	err := p.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAtlases).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return ids, err
}

// PutAnimations stores an animation set under id.
func (p *Pack) PutAnimations(id string, set burst.AnimationSet) error {
	data, err := set.Marshal()
	if err != nil {
		return fmt.Errorf("pack: animations %q: %w", id, err)
	}
	return p.put(bucketAnimations, id, data)
}

// Animations returns the animation set stored under id.
func (p *Pack) Animations(id string) (burst.AnimationSet, error) {
	data, err := p.get(bucketAnimations, id)
	if err != nil {
		return burst.AnimationSet{}, err
	}
	return burst.ParseAnimationSet(data)
}

func (p *Pack) put(bucket []byte, id string, data []byte) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
}

// get copies the value out, since bbolt memory is only valid inside the
// transaction.
func (p *Pack) get(bucket []byte, id string) ([]byte, error) {
	var out []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("pack: %s %q: %w", bucket, id, ErrNotFound)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}
