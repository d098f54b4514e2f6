// Command burstpack validates a texture atlas and stores it, its picture and
// an optional animation set in a burst resource pack.
//
//	burstpack -image hero.png -atlas hero.xml -animations hero.yml -id hero -out stage.res
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/burst"
	"github.com/phanxgames/burst/pack"
)

var (
	imagePath      string
	atlasPath      string
	format         string
	animationsPath string
	atlasID        string
	resourcePath   string
)

func parseFlags() {
	flag.StringVar(&imagePath, "image", "",
		"Path to the atlas source image (PNG).")
	flag.StringVar(&atlasPath, "atlas", "",
		"Path to the atlas description.")
	flag.StringVar(&format, "format", "",
		"Atlas format: sparrow or json. Inferred from the description extension when empty.")
	flag.StringVar(&animationsPath, "animations", "",
		"Optional path to a YAML animation set.")
	flag.StringVar(&atlasID, "id", "",
		"ID to store the atlas under. Defaults to the description file name without extension.")
	flag.StringVar(&resourcePath, "out", "./stage.res",
		"Resource file to store the atlas in.")

	flag.Parse()
}

func main() {
	parseFlags()

	if imagePath == "" || atlasPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if atlasID == "" {
		atlasID = strings.TrimSuffix(filepath.Base(atlasPath), filepath.Ext(atlasPath))
	}

	if err := run(); err != nil {
		log.Fatalf("burstpack: %v", err)
	}
}

// run validates the inputs and writes them to the pack. The pack is closed
// before run returns, also on error.
func run() (err error) {
	// Parse first so nothing is written for a broken atlas.
	frames, err := loadAtlas()
	if err != nil {
		return err
	}

	var set *burst.AnimationSet
	if animationsPath != "" {
		s, err := burst.LoadAnimationSet(animationsPath)
		if err != nil {
			return err
		}
		if err := checkAnimations(s, frames); err != nil {
			return err
		}
		set = &s
	}

	pictureBytes, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}

	res, err := pack.Open(resourcePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := res.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	pictureID := filepath.Base(imagePath)
	if err := res.PutPicture(pictureID, pictureBytes); err != nil {
		return err
	}
	if err := res.PutAtlas(atlasID, pictureID, frames); err != nil {
		return err
	}
	if set != nil {
		if err := res.PutAnimations(atlasID, *set); err != nil {
			return err
		}
	}

	log.Printf("burstpack: stored atlas %q (%d frames) in %s", atlasID, frames.Len(), resourcePath)
	return nil
}

func loadAtlas() (*burst.FrameCollection, error) {
	f := format
	if f == "" {
		switch strings.ToLower(filepath.Ext(atlasPath)) {
		case ".xml":
			f = "sparrow"
		case ".json":
			f = "json"
		}
	}
	switch f {
	case "sparrow":
		return burst.LoadSparrow(imagePath, atlasPath)
	case "json":
		return burst.LoadJSONPacker(imagePath, atlasPath)
	default:
		return nil, fmt.Errorf("unknown atlas format %q", f)
	}
}

// checkAnimations applies the set to a scratch sprite so bad frame indices and
// dead prefixes are reported before anything is written.
func checkAnimations(set burst.AnimationSet, frames *burst.FrameCollection) error {
	scratch := burst.NewSprite("scratch")
	scratch.LoadFrames(frames)
	for _, a := range set.Animations {
		for _, i := range a.Frames {
			if frames.Get(i) == nil {
				return fmt.Errorf("animation %q: frame index %d out of range (%d frames)", a.Name, i, frames.Len())
			}
		}
	}
	if n := set.Apply(scratch.Animation); n != len(set.Animations) {
		return fmt.Errorf("only %d of %d animations matched any frame", n, len(set.Animations))
	}
	return nil
}
