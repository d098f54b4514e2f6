package burst

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnimationSet is a YAML description of a sprite's animations:
//
//	default: idle
//	animations:
//	  - name: idle
//	    prefix: "idle "
//	    fps: 24
//	  - name: hit
//	    frames: [4, 5, 6]
//	    loop: false
type AnimationSet struct {
	// Default is played by Apply when set.
	Default    string         `yaml:"default,omitempty"`
	Animations []AnimationDef `yaml:"animations"`
}

// AnimationDef declares one animation either by explicit frame indices or by
// a frame-name prefix. Frames wins when both are given.
type AnimationDef struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix,omitempty"`
	Frames []int  `yaml:"frames,omitempty"`
	FPS    int    `yaml:"fps,omitempty"`  // <= 0 uses DefaultFrameRate
	Loop   *bool  `yaml:"loop,omitempty"` // nil = true
}

// Looped reports the effective loop flag.
func (s AnimationDef) Looped() bool {
	return s.Loop == nil || *s.Loop
}

// ParseAnimationSet decodes YAML and validates that every entry is named and
// has a frame source.
func ParseAnimationSet(data []byte) (AnimationSet, error) {
	var set AnimationSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return AnimationSet{}, fmt.Errorf("burst: parse animation set: %w", err)
	}
	for i, a := range set.Animations {
		if a.Name == "" {
			return AnimationSet{}, fmt.Errorf("burst: animation #%d has no name", i)
		}
		if len(a.Frames) == 0 && a.Prefix == "" {
			return AnimationSet{}, fmt.Errorf("burst: animation %q needs frames or a prefix", a.Name)
		}
	}
	return set, nil
}

// LoadAnimationSet reads and parses a YAML animation set file.
func LoadAnimationSet(path string) (AnimationSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnimationSet{}, fmt.Errorf("burst: read animation set %s: %w", path, err)
	}
	return ParseAnimationSet(data)
}

// Marshal encodes the set back to YAML.
func (set AnimationSet) Marshal() ([]byte, error) {
	return yaml.Marshal(set)
}

// Apply registers every animation on c and plays Default if it was added.
// It returns how many animations were registered; prefixes that match no
// frame are skipped.
func (set AnimationSet) Apply(c *AnimationController) int {
	n := 0
	for _, a := range set.Animations {
		var ok bool
		if len(a.Frames) > 0 {
			ok = c.Add(a.Name, a.Frames, a.FPS, a.Looped())
		} else {
			ok = c.AddByPrefix(a.Name, a.Prefix, a.FPS, a.Looped())
		}
		if ok {
			n++
		}
	}
	if set.Default != "" {
		c.Play(set.Default)
	}
	return n
}
