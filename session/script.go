package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScript   = errors.New("empty input script")
	ErrInvalidScript = errors.New("invalid input script")
)

// DefaultMaxTicks bounds a script that does not set max_ticks: five minutes
// at 60 ticks per second.
const DefaultMaxTicks = 5 * 60 * 60

// Script is a recorded sequence of inputs for headless runs.
type Script struct {
	Level    int    `yaml:"level"`
	MaxTicks uint64 `yaml:"max_ticks"`
	Steps    []Step `yaml:"steps"`
}

// Step applies its inputs right before tick Tick runs. Tick 0 is the first
// tick after Start.
type Step struct {
	Tick    uint64   `yaml:"tick"`
	Press   []string `yaml:"press"`
	Release []string `yaml:"release"`
	Tap     int      `yaml:"tap"`
}

// ParseScript decodes and checks a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Script
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadScript reads and parses a script from fsys.
func LoadScript(fsys fs.FS, path string) (*Script, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	sc, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return sc, nil
}

func (sc *Script) validate() error {
	var last uint64
	for i, st := range sc.Steps {
		if i > 0 && st.Tick < last {
			return fmt.Errorf("%w: step %d at tick %d is before tick %d", ErrInvalidScript, i, st.Tick, last)
		}
		last = st.Tick
		for _, name := range append(append([]string{}, st.Press...), st.Release...) {
			if _, err := ParseButton(name); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i, err)
			}
		}
		if st.Tap < 0 {
			return fmt.Errorf("%w: step %d: negative tap count", ErrInvalidScript, i)
		}
	}
	return nil
}

func (st Step) apply(s *Session) {
	for _, name := range st.Release {
		b, _ := ParseButton(name)
		s.Release(b)
	}
	for _, name := range st.Press {
		b, _ := ParseButton(name)
		s.Press(b)
	}
	for i := 0; i < st.Tap; i++ {
		s.Tap()
	}
}

// Play steps the session as fast as possible, feeding the script's inputs,
// until the level completes, the tick limit is reached or ctx is done. It
// returns the last frame.
func (sc *Script) Play(ctx context.Context, s *Session) (Frame, error) {
	limit := sc.MaxTicks
	if limit == 0 {
		limit = DefaultMaxTicks
	}

	var frame Frame
	next := 0
	for tick := uint64(0); tick < limit; tick++ {
		if err := ctx.Err(); err != nil {
			return frame, err
		}
		for next < len(sc.Steps) && sc.Steps[next].Tick <= tick {
			sc.Steps[next].apply(s)
			next++
		}

		var err error
		frame, err = s.Step()
		if err != nil {
			return frame, err
		}
		if frame.Phase == Complete {
			break
		}
	}
	return frame, nil
}
